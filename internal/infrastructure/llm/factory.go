package llm

import (
	"fmt"

	"thelight-api/internal/config"
	"thelight-api/internal/workflow/port"
)

// BuildChain 按 fallback_chain 顺序创建提供商客户端。
// 凭据缺失的提供商照常创建，调用时以 ProviderUnavailable 失败。
func BuildChain(cfg *config.LLMConfig) ([]port.TextGenerator, error) {
	chain := make([]port.TextGenerator, 0, len(cfg.FallbackChain))
	for _, name := range cfg.FallbackChain {
		providerCfg, ok := cfg.Providers[name]
		if !ok {
			return nil, fmt.Errorf("provider %s not found in LLM config", name)
		}
		gen, err := New(name, providerCfg)
		if err != nil {
			return nil, err
		}
		chain = append(chain, gen)
	}
	return chain, nil
}

// New 按提供商类型创建客户端
func New(name string, cfg config.ProviderConfig) (port.TextGenerator, error) {
	switch cfg.Type {
	case config.ProviderTypeOpenAI:
		return NewOpenAIGenerator(name, cfg), nil
	case config.ProviderTypeGemini:
		return NewGeminiGenerator(name, cfg), nil
	default:
		return nil, fmt.Errorf("provider %s has unsupported type %q", name, cfg.Type)
	}
}
