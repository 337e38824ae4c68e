// cmd/content-server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"astral-content/internal/api"
	"astral-content/internal/common/aws"
	"astral-content/internal/common/config"
	"astral-content/internal/common/database"
	"astral-content/internal/common/logger"
	"astral-content/internal/email"
	"astral-content/internal/genai"
	"astral-content/internal/locale"
	"astral-content/internal/newsletter"
	"astral-content/internal/prompt"
	"astral-content/internal/subscriber"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting content server...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	ctx := context.Background()

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	// --- Locale service backed by the Redis document store ---
	store := locale.NewRedisStore(redis.Client)
	locales := locale.NewService(store, cfg.Locale, log)

	// --- Prompt composition ---
	catalog := prompt.NewCatalog()
	composer := prompt.NewComposer(catalog, log)
	localized := prompt.NewLocalizedComposer(composer, locales, log)

	// --- Outbound email (SES), optional ---
	var mailer *email.Mailer
	renderer := email.NewRenderer(locales, log)
	if cfg.Email.Enabled {
		sesClient, err := aws.NewSESClient(ctx, cfg.Email.AWS.Region)
		if err != nil {
			zapLog.Fatal("SES client init failed", zap.Error(err))
		}
		mailer = email.NewMailer(sesClient, renderer, cfg.Email.FromEmail, true, log)
		zapLog.Info("SES mailer initialized", zap.String("region", cfg.Email.AWS.Region))
	} else {
		mailer = email.NewMailer(nil, renderer, cfg.Email.FromEmail, false, log)
		zapLog.Info("Email delivery disabled, welcome emails will be logged only")
	}

	// --- Subscriber registration ---
	subscriberStore := subscriber.NewPostgresStore(pg.DB)
	subscribers := subscriber.NewService(subscriberStore, mailer, locales, log)

	// --- Delivery pipeline ---
	generator := genai.NewClient(cfg.GenAI, log)
	newsletters := newsletter.NewService(localized, generator, mailer, log)

	// --- HTTP server ---
	responses := api.NewResponseBuilder(locales, log)
	server := api.NewServer(cfg, locales, responses, subscribers, localized, newsletters, log)

	httpServer := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      server.NewRouter(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Millisecond,
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("address", cfg.Server.Address))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLog.Info("Shutdown signal received, draining...")

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Server.ShutdownTimeout)*time.Millisecond)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("http server shutdown failed", zap.Error(err))
	}

	zapLog.Info("Content server stopped")
}
