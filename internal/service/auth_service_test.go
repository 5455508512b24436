package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"catalog-admin/internal/domain"
	"catalog-admin/internal/repository"
)

type mockUserRepo struct {
	users map[string]*domain.User
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if user, ok := m.users[username]; ok {
		return user, nil
	}
	return nil, repository.ErrNotFound
}

func newAuthFixture(t *testing.T, ttl time.Duration) (AuthService, *mockUserRepo) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &mockUserRepo{users: map[string]*domain.User{
		"admin": {Username: "admin", PasswordHash: string(hash)},
	}}
	return NewAuthService(repo, "test-secret", ttl), repo
}

func TestLoginSuccess(t *testing.T) {
	auth, _ := newAuthFixture(t, time.Hour)

	token, err := auth.Login(context.Background(), "admin", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, ok := auth.Resolve(context.Background(), token)
	assert.True(t, ok)
	assert.Equal(t, "admin", username)
}

func TestLoginFailureIsGeneric(t *testing.T) {
	auth, _ := newAuthFixture(t, time.Hour)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "wrong"},
		{"unknown user", "nobody", "hunter22"},
		{"empty username", "", "hunter22"},
		{"empty password", "admin", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.Login(context.Background(), tt.username, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestResolveRejectsBadTokens(t *testing.T) {
	auth, _ := newAuthFixture(t, time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, ok := auth.Resolve(context.Background(), token)
		assert.False(t, ok)
	}
}

func TestResolveRejectsExpiredToken(t *testing.T) {
	auth, _ := newAuthFixture(t, -time.Minute)

	token, err := auth.Login(context.Background(), "admin", "hunter22")
	require.NoError(t, err)

	_, ok := auth.Resolve(context.Background(), token)
	assert.False(t, ok)
}

func TestResolveRejectsForeignSignature(t *testing.T) {
	auth, repo := newAuthFixture(t, time.Hour)

	token, err := auth.Login(context.Background(), "admin", "hunter22")
	require.NoError(t, err)

	other := NewAuthService(repo, "different-secret", time.Hour)
	_, ok := other.Resolve(context.Background(), token)
	assert.False(t, ok)
}

func TestResolveAnonymousWhenUserGone(t *testing.T) {
	auth, repo := newAuthFixture(t, time.Hour)

	token, err := auth.Login(context.Background(), "admin", "hunter22")
	require.NoError(t, err)

	delete(repo.users, "admin")

	_, ok := auth.Resolve(context.Background(), token)
	assert.False(t, ok)
}
