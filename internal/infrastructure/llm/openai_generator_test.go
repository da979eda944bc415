package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"thelight-api/internal/config"
	apperrors "thelight-api/pkg/errors"
)

func openaiConfig(baseURL string) config.ProviderConfig {
	return config.ProviderConfig{
		Type:        config.ProviderTypeOpenAI,
		DisplayName: "OpenAI",
		APIKey:      "sk-test",
		BaseURL:     baseURL,
		Models:      []string{"gpt-4o-mini"},
		MaxTokens:   1500,
		Temperature: 0.7,
		JSONMode:    true,
	}
}

func writeChatCompletion(w http.ResponseWriter, content string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o-mini",
		"choices": []any{
			map[string]any{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			},
		},
		"usage": map[string]any{"prompt_tokens": 12, "completion_tokens": 8, "total_tokens": 20},
	})
}

func TestOpenAI_MissingKeySendsNoRequest(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	cfg := openaiConfig(srv.URL)
	cfg.APIKey = "  "
	_, err := NewOpenAIGenerator("openai", cfg).Generate(context.Background(), testPrompt)
	if appErr := apperrors.AsAppError(err); appErr.Message != "OpenAI API key not configured" {
		t.Fatalf("unexpected error %v", err)
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Fatalf("expected no requests, got %d", hits)
	}
}

func TestOpenAI_Success(t *testing.T) {
	var body map[string]any
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		auth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		writeChatCompletion(w, `{"summary":"s","takeaways":[]}`)
	}))
	defer srv.Close()

	got, err := NewOpenAIGenerator("openai", openaiConfig(srv.URL)).Generate(context.Background(), testPrompt)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got.Text != `{"summary":"s","takeaways":[]}` || got.Model != "gpt-4o-mini" {
		t.Errorf("unexpected completion %+v", got)
	}
	if auth != "Bearer sk-test" {
		t.Errorf("authorization header = %q", auth)
	}
	if body["model"] != "gpt-4o-mini" {
		t.Errorf("model = %v", body["model"])
	}
	if rf, _ := body["response_format"].(map[string]any); rf["type"] != "json_object" {
		t.Errorf("response_format = %v", body["response_format"])
	}
	msgs, _ := body["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("messages = %v", body["messages"])
	}
	if first, _ := msgs[0].(map[string]any); first["role"] != "system" || first["content"] != "system text" {
		t.Errorf("system message = %v", first)
	}
}

func TestOpenAI_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"You exceeded your current quota","type":"insufficient_quota","code":"insufficient_quota"}}`))
	}))
	defer srv.Close()

	_, err := NewOpenAIGenerator("openai", openaiConfig(srv.URL)).Generate(context.Background(), testPrompt)
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeLLMCallFailed || !strings.HasPrefix(appErr.Message, "OpenAI API error: ") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestOpenAI_EmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeChatCompletion(w, "")
	}))
	defer srv.Close()

	_, err := NewOpenAIGenerator("openai", openaiConfig(srv.URL)).Generate(context.Background(), testPrompt)
	if appErr := apperrors.AsAppError(err); appErr.Message != "No content received from OpenAI" {
		t.Fatalf("unexpected error %v", err)
	}
}
