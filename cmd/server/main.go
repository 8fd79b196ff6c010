// Package main is the entry point for the WhatsApp assistant HTTP server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/popeskul/whatsapp-assistant/internal/config"
	"github.com/popeskul/whatsapp-assistant/internal/handler"
	"github.com/popeskul/whatsapp-assistant/internal/infrastructure/migrate"
	"github.com/popeskul/whatsapp-assistant/internal/middleware"
	"github.com/popeskul/whatsapp-assistant/internal/repository"
	"github.com/popeskul/whatsapp-assistant/internal/service"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	if cfg.Database.AutoMigrate {
		runner := migrate.NewRunner(&migrate.Config{
			DatabaseURL:    cfg.Database.GetURL(),
			MigrationsPath: cfg.Database.MigrationsPath,
		}, logger.Named("migrate"))
		if err := runner.Run(); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	db, err := openDatabase(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	redisClient := openRedis(&cfg.Redis, logger)
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, redisClient, logger)

	h := handler.NewHandler(svc, logger.Named("http"))

	router := setupRouter(&cfg.Server, h, svc.Tokens, logger)

	middlewareConfig := &middleware.Config{
		Logger:         logger,
		RequestTimeout: time.Duration(cfg.Middleware.RequestTimeout) * time.Second,
		NoTimeoutPaths: []string{webhookPath},
	}
	if cfg.Middleware.EnableCORS {
		middlewareConfig.CORS = middleware.NewCORSConfig(cfg.Middleware.AllowedOrigins)
	}

	finalHandler := middleware.Chain(middlewareConfig)(router)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      finalHandler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Listening",
			zap.String("address", srv.Addr),
			zap.String("model", cfg.AI.Model))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server stopped", zap.Error(err))
		}
		return
	case <-ctx.Done():
	}

	logger.Info("Shutdown signal received, draining in-flight webhooks")

	// In-flight webhooks get the full completion window to finish.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), service.DefaultCompletionTimeout+10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown incomplete", zap.Error(err))
	}

	logger.Info("Server stopped")
}

func openDatabase(cfg *config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.GetDSN())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	return db, nil
}

// openRedis never fails: Redis only backs webhook dedup and the unique index
// on external_id still rejects replays without it.
func openRedis(cfg *config.RedisConfig, logger *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis unavailable, continuing without fast dedup", zap.Error(err))
	}
	return client
}
