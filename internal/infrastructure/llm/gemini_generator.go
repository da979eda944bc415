package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"

	"thelight-api/internal/config"
	"thelight-api/internal/domain/service"
	"thelight-api/internal/workflow/port"
	apperrors "thelight-api/pkg/errors"
	"thelight-api/pkg/logger"
	"thelight-api/pkg/metrics"
)

// insightSchema 约束 Gemini 输出为 {summary, takeaways}
var insightSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"summary": {
			Type:        genai.TypeString,
			Description: "2-3 paragraph summary of the chapter",
		},
		"takeaways": {
			Type:        genai.TypeArray,
			Description: "3-5 one-sentence actionable takeaways",
			Items:       &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"summary", "takeaways"},
}

// GeminiGenerator 基于 google genai SDK 的 generateContent 客户端
type GeminiGenerator struct {
	name string
	cfg  config.ProviderConfig

	mu     sync.Mutex
	client *genai.Client
}

// NewGeminiGenerator 创建 Gemini 提供商客户端
func NewGeminiGenerator(name string, cfg config.ProviderConfig) *GeminiGenerator {
	return &GeminiGenerator{name: name, cfg: cfg}
}

// Name 降级链中的提供商名
func (g *GeminiGenerator) Name() string {
	return g.name
}

// Generate 按顺序尝试候选模型；任一模型失败（含 404 模型不存在）都继续下一个，保留最后一个错误
func (g *GeminiGenerator) Generate(ctx context.Context, prompt port.Prompt) (*port.Completion, error) {
	display := g.cfg.Name("Gemini")
	if !g.cfg.Configured() {
		return nil, errUnavailable(g.cfg.KeyName(display))
	}

	client, err := g.genaiClient(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeLLMProviderError, err.Error())
	}

	// generateContent 没有独立的 system 角色，系统指令以空格拼在用户提示前
	contents := genai.Text(strings.TrimSpace(prompt.System + " " + prompt.User))

	var lastErr error
	for _, m := range g.cfg.Models {
		completion, err := g.generateWith(ctx, client, contents, m, display)
		if err == nil {
			return completion, nil
		}
		lastErr = err
		logger.Warn(ctx, "gemini model attempt failed", "provider", g.name, "model", m, "error", err.Error())
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, errAllModelsFailed(display)
}

func (g *GeminiGenerator) generateWith(ctx context.Context, client *genai.Client, contents []*genai.Content, modelName, display string) (*port.Completion, error) {
	workflow := service.WorkflowFromContext(ctx)
	start := time.Now()

	resp, err := client.Models.GenerateContent(ctx, modelName, contents, g.generateConfig())
	metrics.LLMCallDuration.WithLabelValues(workflow, g.name, modelName).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.LLMCallTotal.WithLabelValues(workflow, g.name, modelName, "error").Inc()
		return nil, apperrors.Wrap(err, apperrors.CodeLLMCallFailed, apiErrorMessage(err))
	}
	metrics.LLMCallTotal.WithLabelValues(workflow, g.name, modelName, "success").Inc()

	if u := resp.UsageMetadata; u != nil {
		metrics.LLMTokensUsed.WithLabelValues(workflow, g.name, modelName, "prompt").Add(float64(u.PromptTokenCount))
		metrics.LLMTokensUsed.WithLabelValues(workflow, g.name, modelName, "completion").Add(float64(u.CandidatesTokenCount))
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return nil, errNoContent(display)
	}
	return &port.Completion{Text: text, Model: modelName}, nil
}

func (g *GeminiGenerator) generateConfig() *genai.GenerateContentConfig {
	gc := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(g.cfg.Temperature)),
	}
	if g.cfg.MaxTokens > 0 {
		gc.MaxOutputTokens = int32(g.cfg.MaxTokens)
	}
	if g.cfg.JSONMode {
		gc.ResponseMIMEType = "application/json"
		gc.ResponseSchema = insightSchema
	}
	return gc
}

// genaiClient 惰性创建 genai 客户端；凭据缺失时不会走到这里
func (g *GeminiGenerator) genaiClient(ctx context.Context) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.client != nil {
		return g.client, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     g.cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: g.cfg.Timeout},
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    g.cfg.BaseURL,
			APIVersion: g.cfg.APIVersion,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client for %s: %w", g.name, err)
	}
	g.client = client
	return client, nil
}

// apiErrorMessage 取提供商返回的错误消息，非 API 错误时使用原始错误文本
func apiErrorMessage(err error) string {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil && apiErrPtr.Message != "" {
		return apiErrPtr.Message
	}
	return err.Error()
}
