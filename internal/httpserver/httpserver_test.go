package httpserver_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"banking-assistant/internal/assistant"
	"banking-assistant/internal/assistant/repository/memory"
	"banking-assistant/internal/assistant/usecase"
	"banking-assistant/internal/httpserver"
	"banking-assistant/internal/model"
	"banking-assistant/internal/router"
	"banking-assistant/internal/test"
	"banking-assistant/pkg/log"
)

type recordingLogger struct {
	log.Logger
	mu   sync.Mutex
	msgs []string
}

func (r *recordingLogger) Info(ctx context.Context, arg ...any) {
	r.record(fmt.Sprint(arg...))
}

func (r *recordingLogger) Infof(ctx context.Context, template string, arg ...any) {
	r.record(fmt.Sprintf(template, arg...))
}

func (r *recordingLogger) record(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func newServer(t *testing.T, cfg httpserver.Config) *httpserver.HTTPServer {
	t.Helper()

	l := log.NewNop()
	rt := router.New(l)
	uc := usecase.New(l, rt, memory.New(l, 10, time.Minute), nil, assistant.Config{})

	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	cfg.Mode = gin.TestMode
	cfg.AssistantUC = uc
	if cfg.Environment == "" {
		cfg.Environment = string(model.EnvironmentDevelopment)
	}
	cfg.TestHandler = test.New(l, rt, uc)

	srv, err := httpserver.New(l, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func get(srv *httpserver.HTTPServer, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestNewValidation(t *testing.T) {
	if _, err := httpserver.New(log.NewNop(), httpserver.Config{Mode: gin.TestMode, Port: 1}); err == nil {
		t.Errorf("expected error without assistant use case")
	}
	if _, err := httpserver.New(log.NewNop(), httpserver.Config{Port: 1}); err == nil {
		t.Errorf("expected error without mode")
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newServer(t, httpserver.Config{})

	for _, path := range []string{"/health", "/ready", "/live", "/test/health", "/api/v1/assistant/charts/spending"} {
		if w := get(srv, path); w.Code != http.StatusOK {
			t.Errorf("GET %s: expected 200, got %d", path, w.Code)
		}
	}

	w := get(srv, "/metrics")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "http_request_duration_seconds") {
		t.Errorf("expected request metrics to be exported, got %d", w.Code)
	}
}

func TestReadyProbeFailure(t *testing.T) {
	srv := newServer(t, httpserver.Config{
		Ready: func(ctx context.Context) error { return errors.New("redis down") },
	})

	if w := get(srv, "/ready"); w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}

func TestTestRoutesHiddenInProduction(t *testing.T) {
	srv := newServer(t, httpserver.Config{Environment: string(model.EnvironmentProduction)})

	if w := get(srv, "/test/health"); w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestStartupLogsOnlyWiredMiddleware(t *testing.T) {
	l := &recordingLogger{Logger: log.NewNop()}
	rt := router.New(l)
	uc := usecase.New(l, rt, memory.New(l, 10, time.Minute), nil, assistant.Config{})

	for _, env := range []model.Environment{model.EnvironmentDevelopment, model.EnvironmentProduction} {
		_, err := httpserver.New(l, httpserver.Config{
			Mode:        gin.TestMode,
			Port:        8080,
			Environment: string(env),
			AssistantUC: uc,
		})
		if err != nil {
			t.Fatalf("New(%s): %v", env, err)
		}
	}

	for _, msg := range l.msgs {
		if strings.Contains(msg, "CORS") {
			t.Errorf("unexpected CORS log line %q", msg)
		}
	}
}

func TestRunShutdown(t *testing.T) {
	srv := newServer(t, httpserver.Config{Port: 38471})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
