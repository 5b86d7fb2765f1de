package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"banking-assistant/config"
	_ "banking-assistant/docs" // Swagger docs
	"banking-assistant/internal/assistant"
	"banking-assistant/internal/assistant/repository"
	memoryRepo "banking-assistant/internal/assistant/repository/memory"
	redisRepo "banking-assistant/internal/assistant/repository/redis"
	"banking-assistant/internal/assistant/usecase"
	"banking-assistant/internal/httpserver"
	"banking-assistant/internal/router"
	"banking-assistant/internal/test"
	"banking-assistant/pkg/log"
	pkgRedis "banking-assistant/pkg/redis"
)

// @title       Banking Assistant API
// @description Keyword-routed financial chat assistant and voice banking commands.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Banking Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Session backend: %s", cfg.Session.Backend)

	// 3. Transcript repository
	var (
		repo  repository.TranscriptRepository
		ready httpserver.ReadinessProbe
	)
	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		client, err := pkgRedis.Connect(ctx, pkgRedis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			logger.Error(ctx, "Failed to connect to Redis: ", err)
			return
		}
		defer client.Close()

		repo = redisRepo.New(logger, client, cfg.Session.TTL)
		ready = func(ctx context.Context) error { return client.Ping(ctx).Err() }
		logger.Infof(ctx, "✅ Redis connected at %s", cfg.Redis.Addr)
	default:
		repo = memoryRepo.New(logger, cfg.Session.MaxSessions, cfg.Session.TTL)
	}

	// 4. Assistant domain
	seed := cfg.Assistant.TipSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	intentRouter := router.New(logger)
	assistantUC := usecase.New(logger, intentRouter, repo, rand.New(rand.NewSource(seed)), assistant.Config{
		ReplyDelay:    cfg.Assistant.ReplyDelay,
		NavigateDelay: cfg.Assistant.NavigateDelay,
		HistoryLimit:  cfg.Session.HistoryLimit,
	})

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
		AssistantUC:     assistantUC,
		Ready:           ready,
		TestHandler:     test.New(logger, intentRouter, assistantUC),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
