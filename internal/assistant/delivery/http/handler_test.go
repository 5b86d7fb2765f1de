package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"banking-assistant/internal/assistant"
	assistantHTTP "banking-assistant/internal/assistant/delivery/http"
	"banking-assistant/internal/assistant/repository/memory"
	"banking-assistant/internal/assistant/usecase"
	"banking-assistant/internal/middleware"
	"banking-assistant/internal/router"
	"banking-assistant/pkg/response"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type fixedRand struct{}

func (fixedRand) Intn(int) int { return 0 }

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

type replyData struct {
	SessionID   string `json:"session_id"`
	Intent      string `json:"intent"`
	Command     string `json:"command"`
	RevealAfter int64  `json:"reveal_after_ms"`
	UserMessage *struct {
		Text string `json:"text"`
	} `json:"user_message"`
	Reply struct {
		Text       string `json:"text"`
		SideEffect *struct {
			Kind    string `json:"kind"`
			Chart   string `json:"chart"`
			Path    string `json:"path"`
			DelayMs int    `json:"delay_ms"`
		} `json:"side_effect"`
	} `json:"reply"`
}

func newServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := &mockLogger{}
	uc := usecase.New(l, router.New(l), memory.New(l, 100, time.Minute), fixedRand{}, assistant.Config{
		ReplyDelay: usecase.DefaultReplyDelay,
	})

	r := gin.New()
	mw := middleware.New(l, 0)
	assistantHTTP.RegisterRoutes(r.Group("/api/v1/assistant"), assistantHTTP.New(l, uc), mw)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, user string, body any) (int, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set(middleware.HeaderUserID, user)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
	}
	return w.Code, env
}

func TestChatFlow(t *testing.T) {
	r := newServer(t)

	code, env := do(t, r, http.MethodPost, "/api/v1/assistant/chat", "alice", gin.H{
		"text": "How much did I spend?",
	})
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", code, env.Message)
	}

	var reply replyData
	if err := json.Unmarshal(env.Data, &reply); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if reply.Intent != "SPENDING_INQUIRY" || reply.RevealAfter != 1000 {
		t.Errorf("unexpected reply %+v", reply)
	}
	if reply.Reply.SideEffect == nil || reply.Reply.SideEffect.Chart != "spending" {
		t.Errorf("expected spending chart, got %+v", reply.Reply.SideEffect)
	}

	code, env = do(t, r, http.MethodGet, "/api/v1/assistant/sessions/"+reply.SessionID+"/messages?limit=2", "alice", nil)
	if code != http.StatusOK {
		t.Fatalf("transcript: expected 200, got %d", code)
	}
	var tr struct {
		Messages []struct {
			Role string `json:"role"`
		} `json:"messages"`
	}
	json.Unmarshal(env.Data, &tr)
	if len(tr.Messages) != 2 || tr.Messages[0].Role != "user" {
		t.Errorf("unexpected transcript %+v", tr.Messages)
	}

	if code, _ := do(t, r, http.MethodGet, "/api/v1/assistant/sessions/"+reply.SessionID+"/messages", "bob", nil); code != http.StatusNotFound {
		t.Errorf("other user: expected 404, got %d", code)
	}

	if code, _ := do(t, r, http.MethodDelete, "/api/v1/assistant/sessions/"+reply.SessionID, "alice", nil); code != http.StatusOK {
		t.Errorf("delete: expected 200, got %d", code)
	}
	if code, _ := do(t, r, http.MethodDelete, "/api/v1/assistant/sessions/"+reply.SessionID, "alice", nil); code != http.StatusNotFound {
		t.Errorf("second delete: expected 404, got %d", code)
	}
}

func TestVoiceNavigation(t *testing.T) {
	r := newServer(t)

	code, env := do(t, r, http.MethodPost, "/api/v1/assistant/voice", "", gin.H{
		"event": gin.H{"kind": "result", "transcript": "Withdraw cash"},
		"context": gin.H{
			"accounts": []gin.H{{"id": "ACC-7", "balance": 500}},
		},
	})
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", code, env.Message)
	}

	var reply replyData
	json.Unmarshal(env.Data, &reply)
	if reply.Command != "WITHDRAW" || reply.UserMessage == nil || reply.UserMessage.Text != "withdraw cash" {
		t.Errorf("unexpected reply %+v", reply)
	}
	se := reply.Reply.SideEffect
	if se == nil || se.Kind != "navigate" || se.Path != "/account/withdraw/ACC-7" || se.DelayMs != 1500 {
		t.Errorf("unexpected side effect %+v", se)
	}
}

func TestErrorMapping(t *testing.T) {
	r := newServer(t)

	_, env := do(t, r, http.MethodPost, "/api/v1/assistant/sessions", "alice", gin.H{"mode": "voice"})
	var started struct {
		Session struct {
			ID string `json:"id"`
		} `json:"session"`
	}
	json.Unmarshal(env.Data, &started)

	tcs := map[string]struct {
		method string
		path   string
		body   any
		want   int
	}{
		"blank text":         {http.MethodPost, "/api/v1/assistant/chat", gin.H{"text": "   "}, http.StatusBadRequest},
		"missing text":       {http.MethodPost, "/api/v1/assistant/chat", gin.H{}, http.StatusBadRequest},
		"unknown session":    {http.MethodPost, "/api/v1/assistant/chat", gin.H{"session_id": "nope", "text": "budget"}, http.StatusNotFound},
		"mode mismatch":      {http.MethodPost, "/api/v1/assistant/chat", gin.H{"session_id": started.Session.ID, "text": "budget"}, http.StatusConflict},
		"bad mode":           {http.MethodPost, "/api/v1/assistant/sessions", gin.H{"mode": "sms"}, http.StatusBadRequest},
		"blank voice result": {http.MethodPost, "/api/v1/assistant/voice", gin.H{"event": gin.H{"kind": "result", "transcript": "  "}}, http.StatusBadRequest},
		"bad event":          {http.MethodPost, "/api/v1/assistant/voice", gin.H{"event": gin.H{"kind": "partial"}}, http.StatusBadRequest},
		"unknown chart":      {http.MethodGet, "/api/v1/assistant/charts/pie", nil, http.StatusBadRequest},
		"known chart":        {http.MethodGet, "/api/v1/assistant/charts/category", nil, http.StatusOK},
		"negative limit":     {http.MethodGet, "/api/v1/assistant/sessions/" + started.Session.ID + "/messages?limit=-1", nil, http.StatusBadRequest},
		"account without id": {http.MethodPost, "/api/v1/assistant/chat", gin.H{"text": "balance", "context": gin.H{"accounts": []gin.H{{"balance": 1}}}}, http.StatusBadRequest},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			code, env := do(t, r, tc.method, tc.path, "alice", tc.body)
			if code != tc.want {
				t.Errorf("expected %d, got %d (%s)", tc.want, code, env.Message)
			}
		})
	}
}

func TestStartSessionTimestamps(t *testing.T) {
	r := newServer(t)

	code, env := do(t, r, http.MethodPost, "/api/v1/assistant/sessions", "alice", gin.H{"mode": "chat"})
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", code, env.Message)
	}

	var started struct {
		Session struct {
			CreatedAt string `json:"created_at"`
		} `json:"session"`
	}
	json.Unmarshal(env.Data, &started)

	ts, err := time.Parse(response.DateTimeFormat, started.Session.CreatedAt)
	if err != nil {
		t.Fatalf("created_at %q not in response format: %v", started.Session.CreatedAt, err)
	}
	if time.Since(ts) > time.Minute {
		t.Errorf("unexpected created_at %v", ts)
	}
}
