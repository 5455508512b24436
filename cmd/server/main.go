package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"catalog-admin/internal/config"
	apphttp "catalog-admin/internal/http"
	"catalog-admin/internal/repository/mongodb"
	"catalog-admin/internal/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if strings.TrimSpace(cfg.Session.Secret) == "" {
		logger.Fatalf("session secret is required")
	}
	if strings.TrimSpace(cfg.Mongo.URI) == "" {
		logger.Fatalf("mongo uri is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := mongodb.Connect(ctx, cfg.Mongo.URI)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Warnf("mongo disconnect: %v", err)
		}
	}()

	db := client.Database(cfg.Mongo.DBName)
	productRepo := mongodb.NewProductRepository(db)
	userRepo := mongodb.NewUserRepository(db)

	productService := service.NewProductService(productRepo)
	authService := service.NewAuthService(
		userRepo,
		cfg.Session.Secret,
		time.Duration(cfg.Session.TTLMinutes)*time.Minute,
	)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.LoadHTMLGlob("web/templates/*.html")

	handler := apphttp.NewHandler(productService, authService, logger)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}
