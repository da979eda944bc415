package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"thelight-api/internal/domain/entity"
	"thelight-api/internal/workflow/port"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func doRequest(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return out
}

// stubText 返回固定文本的文本生成器
type stubText struct {
	name  string
	text  string
	err   error
	calls int
}

func (s *stubText) Name() string { return s.name }

func (s *stubText) Generate(context.Context, port.Prompt) (*port.Completion, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &port.Completion{Text: s.text, Model: "stub"}, nil
}

// stubService 直接返回预设结果的解读用例
type stubService struct {
	outcome   entity.ProviderOutcome
	err       error
	providers []string
	panicMsg  string
}

func (s *stubService) Generate(context.Context, entity.GenerationRequest) (entity.ProviderOutcome, error) {
	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	return s.outcome, s.err
}

func (s *stubService) Providers() []string { return s.providers }

type stubSource struct {
	text string
	err  error
}

func (s stubSource) ChapterText(context.Context, string, int) (string, error) {
	return s.text, s.err
}
