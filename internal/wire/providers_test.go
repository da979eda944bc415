package wire

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"thelight-api/internal/application/catalog"
	"thelight-api/internal/config"
	"thelight-api/internal/infrastructure/scripture"

	"github.com/gin-gonic/gin"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "thelight-api", Env: "test"},
		LLM: config.LLMConfig{
			FallbackChain: []string{"openai", "gemini"},
			Providers: map[string]config.ProviderConfig{
				"openai": {Type: config.ProviderTypeOpenAI, Models: []string{"gpt-4o"}},
				"gemini": {Type: config.ProviderTypeGemini, Models: []string{"gemini-2.5-flash"}},
			},
		},
	}
}

func TestProvideScriptureSource(t *testing.T) {
	books := catalog.New()

	cfg := testConfig()
	src, err := ProvideScriptureSource(cfg, books, nil)
	if err != nil {
		t.Fatalf("placeholder: %v", err)
	}
	if _, ok := src.(*scripture.PlaceholderSource); !ok {
		t.Fatalf("expected placeholder source, got %T", src)
	}

	cfg.Scripture.Source = "http"
	if _, err := ProvideScriptureSource(cfg, books, nil); err == nil {
		t.Fatal("expected error without url_template")
	}

	cfg.Scripture.URLTemplate = "https://bible.example/{osis}/{chapter}"
	src, err = ProvideScriptureSource(cfg, books, nil)
	if err != nil {
		t.Fatalf("http: %v", err)
	}
	if _, ok := src.(*scripture.HTTPSource); !ok {
		t.Fatalf("expected http source without redis, got %T", src)
	}

	cfg.Scripture.Source = "ftp"
	if _, err := ProvideScriptureSource(cfg, books, nil); err == nil {
		t.Fatal("expected error for unsupported source")
	}
}

func TestOSISResolver(t *testing.T) {
	resolve := osisResolver(catalog.New())
	if got, ok := resolve("1 corinthians"); !ok || got != "1Cor" {
		t.Fatalf("resolve = %q, %v", got, ok)
	}
	if _, ok := resolve("Tobit"); ok {
		t.Fatal("unknown book should not resolve")
	}
}

func TestProvideGeneratorChain(t *testing.T) {
	chain, err := ProvideGeneratorChain(testConfig())
	if err != nil {
		t.Fatalf("ProvideGeneratorChain: %v", err)
	}
	if len(chain) != 2 || chain[0].Name() != "openai" || chain[1].Name() != "gemini" {
		t.Fatalf("chain = %v", chain)
	}

	cfg := testConfig()
	cfg.LLM.FallbackChain = append(cfg.LLM.FallbackChain, "claude")
	if _, err := ProvideGeneratorChain(cfg); err == nil {
		t.Fatal("expected error for provider missing from config")
	}
}

func TestInitializeApp(t *testing.T) {
	gin.SetMode(gin.TestMode)

	app, cleanup, err := InitializeApp(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("InitializeApp: %v", err)
	}
	defer cleanup()

	w := httptest.NewRecorder()
	app.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/books/Genesis", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}
