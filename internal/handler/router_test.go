package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	profileModel "github.com/rohitsharma/rohitai/backend/internal/model/profile"
	chatService "github.com/rohitsharma/rohitai/backend/internal/service/chat"
	"github.com/rohitsharma/rohitai/backend/internal/service/responder"
)

func newTestRouter(t *testing.T, origins []string) http.Handler {
	t.Helper()
	resp, err := responder.NewService(context.Background(), nil, nil)
	require.NoError(t, err)
	chatSvc := chatService.NewService(resp, chatService.Options{})
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = chatSvc.Drain(ctx)
	})

	return NewRouter(Deps{
		Profiles:       profileModel.NewMemoryStore(profileModel.Seed()),
		Chat:           chatSvc,
		Answerer:       resp,
		Logger:         zaptest.NewLogger(t),
		AllowedOrigins: origins,
	})
}

func TestRouterHealthz(t *testing.T) {
	r := newTestRouter(t, nil)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"ok"}`, resp.Body.String())
}

func TestRouterMountsAPI(t *testing.T) {
	r := newTestRouter(t, nil)

	cases := map[string]int{
		"/api/intents":                   http.StatusOK,
		"/api/profile":                   http.StatusOK,
		"/api/profile/projects/mujgpt":   http.StatusOK,
		"/api/session/missing/messages":  http.StatusNotFound,
		"/api/stream/missing?message=hi": http.StatusNotFound,
		"/api/nope":                      http.StatusNotFound,
	}
	for path, want := range cases {
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, want, resp.Code, path)
	}
}

func TestRouterCORS(t *testing.T) {
	r := newTestRouter(t, []string{"https://rohit.example"})

	req := httptest.NewRequest(http.MethodOptions, "/api/ask", nil)
	req.Header.Set("Origin", "https://rohit.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, "https://rohit.example", resp.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://evil.example")
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Empty(t, resp.Header().Get("Access-Control-Allow-Origin"))
}
