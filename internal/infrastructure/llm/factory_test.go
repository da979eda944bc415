package llm

import (
	"testing"

	"thelight-api/internal/config"
)

func TestBuildChain(t *testing.T) {
	cfg := &config.LLMConfig{
		FallbackChain: []string{"openai", "gemini"},
		Providers: map[string]config.ProviderConfig{
			"openai": {Type: config.ProviderTypeOpenAI, Models: []string{"gpt-4o-mini"}},
			"gemini": {Type: config.ProviderTypeGemini, Models: []string{"gemini-3-flash-preview"}},
		},
	}
	chain, err := BuildChain(cfg)
	if err != nil {
		t.Fatalf("BuildChain: %v", err)
	}
	if len(chain) != 2 || chain[0].Name() != "openai" || chain[1].Name() != "gemini" {
		t.Fatalf("unexpected chain %v", chain)
	}
	if _, ok := chain[0].(*OpenAIGenerator); !ok {
		t.Errorf("openai built as %T", chain[0])
	}
	if _, ok := chain[1].(*GeminiGenerator); !ok {
		t.Errorf("gemini built as %T", chain[1])
	}
}

func TestBuildChainErrors(t *testing.T) {
	if _, err := BuildChain(&config.LLMConfig{FallbackChain: []string{"missing"}}); err == nil {
		t.Error("expected error for missing provider")
	}
	cfg := &config.LLMConfig{
		FallbackChain: []string{"x"},
		Providers:     map[string]config.ProviderConfig{"x": {Type: "claude"}},
	}
	if _, err := BuildChain(cfg); err == nil {
		t.Error("expected error for unsupported type")
	}
}
