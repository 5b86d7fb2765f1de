package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"banking-assistant/internal/assistant"
	"banking-assistant/internal/test"
	"banking-assistant/pkg/log"
)

// ReadinessProbe reports whether a backing store can serve traffic.
type ReadinessProbe func(ctx context.Context) error

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Middleware
	rateLimitPerMin int

	// Assistant domain
	assistantUC assistant.UseCase
	ready       ReadinessProbe

	// Test domain
	testHandler test.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	RateLimitPerMin int

	// Assistant domain
	AssistantUC assistant.UseCase
	Ready       ReadinessProbe // Optional

	// Test domain, only mounted outside production
	TestHandler test.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		rateLimitPerMin: cfg.RateLimitPerMin,
		assistantUC:     cfg.AssistantUC,
		ready:           cfg.Ready,
		testHandler:     cfg.TestHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.assistantUC == nil {
		return errors.New("assistant use case is required")
	}
	return nil
}

// Handler exposes the configured gin engine.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
