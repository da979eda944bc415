package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"thelight-api/internal/config"
	"thelight-api/internal/workflow/port"
	apperrors "thelight-api/pkg/errors"
	"thelight-api/pkg/logger"
)

// OpenAIGenerator 基于 Eino ChatModel 的 chat completions 客户端
type OpenAIGenerator struct {
	name string
	cfg  config.ProviderConfig

	mu   sync.Mutex
	chat model.BaseChatModel
}

// NewOpenAIGenerator 创建 OpenAI 兼容提供商客户端
func NewOpenAIGenerator(name string, cfg config.ProviderConfig) *OpenAIGenerator {
	return &OpenAIGenerator{name: name, cfg: cfg}
}

// Name 降级链中的提供商名
func (g *OpenAIGenerator) Name() string {
	return g.name
}

// Generate 依次尝试候选模型，首个返回非空内容的模型胜出
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt port.Prompt) (*port.Completion, error) {
	display := g.cfg.Name("OpenAI")
	if !g.cfg.Configured() {
		return nil, errUnavailable(g.cfg.KeyName(display))
	}
	if len(g.cfg.Models) == 0 {
		return nil, errAllModelsFailed(display)
	}

	chat, err := g.chatModel(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeLLMProviderError, display+" API error: "+err.Error())
	}

	msgs := []*schema.Message{
		schema.SystemMessage(prompt.System),
		schema.UserMessage(prompt.User),
	}

	var lastErr error
	for _, m := range g.cfg.Models {
		completion, err := g.generateWith(ctx, chat, msgs, m, display)
		if err == nil {
			return completion, nil
		}
		lastErr = err
		logger.Warn(ctx, "openai model attempt failed", "provider", g.name, "model", m, "error", err.Error())
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, errAllModelsFailed(display)
}

func (g *OpenAIGenerator) generateWith(ctx context.Context, chat model.BaseChatModel, msgs []*schema.Message, modelName, display string) (*port.Completion, error) {
	out, err := chat.Generate(ctx, msgs, g.options(modelName)...)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeLLMCallFailed, display+" API error: "+err.Error())
	}
	if out == nil || strings.TrimSpace(out.Content) == "" {
		return nil, errNoContent(display)
	}
	return &port.Completion{Text: out.Content, Model: modelName}, nil
}

func (g *OpenAIGenerator) options(modelName string) []model.Option {
	opts := []model.Option{
		model.WithModel(modelName),
		model.WithTemperature(float32(g.cfg.Temperature)),
	}
	if g.cfg.MaxTokens > 0 {
		opts = append(opts, model.WithMaxTokens(g.cfg.MaxTokens))
	}
	if g.cfg.JSONMode {
		opts = append(opts, openai.WithExtraFields(map[string]any{
			"response_format": map[string]any{"type": "json_object"},
		}))
	}
	return opts
}

// chatModel 惰性创建 ChatModel，创建后复用
func (g *OpenAIGenerator) chatModel(ctx context.Context) (model.BaseChatModel, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.chat != nil {
		return g.chat, nil
	}

	chat, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:  g.cfg.APIKey,
		BaseURL: g.cfg.BaseURL,
		Model:   g.cfg.Models[0],
		Timeout: g.cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create eino chat model for %s: %w", g.name, err)
	}
	g.chat = chat
	return chat, nil
}
