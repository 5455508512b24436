package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "catalog", cfg.Mongo.DBName)
	assert.Empty(t, cfg.Session.Secret)
	assert.Equal(t, 720, cfg.Session.TTLMinutes)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CATALOG_SERVER_ADDR", "127.0.0.1:9999")
	t.Setenv("CATALOG_MONGO_DBNAME", "catalog_test")
	t.Setenv("CATALOG_SESSION_SECRET", "s3cret")
	t.Setenv("CATALOG_SESSION_TTLMINUTES", "15")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9999", cfg.Server.Addr)
	assert.Equal(t, "catalog_test", cfg.Mongo.DBName)
	assert.Equal(t, "s3cret", cfg.Session.Secret)
	assert.Equal(t, 15, cfg.Session.TTLMinutes)
}
