package insight

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"thelight-api/internal/domain/entity"
	apperrors "thelight-api/pkg/errors"
	"thelight-api/pkg/logger"
	"thelight-api/pkg/metrics"
	"thelight-api/pkg/tracer"
)

// Generator 链上的单个提供商
type Generator interface {
	Name() string
	Generate(ctx context.Context, req entity.GenerationRequest, sourceText string) (*entity.GenerationResult, error)
}

// Orchestrator 按降级链顺序依次尝试提供商。
// 第一个成功即返回，后续提供商不会被调用；同一提供商不重试。
type Orchestrator struct {
	chain []Generator
}

// NewOrchestrator 创建降级编排器
func NewOrchestrator(chain ...Generator) *Orchestrator {
	return &Orchestrator{chain: chain}
}

// Providers 返回链上的提供商名
func (o *Orchestrator) Providers() []string {
	out := make([]string, 0, len(o.chain))
	for _, g := range o.chain {
		out = append(out, g.Name())
	}
	return out
}

// Generate 执行降级链，返回成功结果或每个提供商的失败原因
func (o *Orchestrator) Generate(ctx context.Context, req entity.GenerationRequest, sourceText string) entity.ProviderOutcome {
	start := time.Now()
	ctx, span := tracer.Start(ctx, "insight.Orchestrator.Generate",
		trace.WithAttributes(
			attribute.String("insight.book", req.Book),
			attribute.Int("insight.chapter", req.Chapter),
		),
	)
	defer span.End()

	failures := make([]entity.ProviderFailure, 0, len(o.chain))
	for i, g := range o.chain {
		result, err := o.attempt(ctx, g, req, sourceText)
		if err == nil {
			metrics.InsightGenerationTotal.WithLabelValues(g.Name(), "success").Inc()
			metrics.InsightGenerationDuration.WithLabelValues("success").Observe(time.Since(start).Seconds())
			span.SetAttributes(attribute.String("insight.provider", g.Name()))
			logger.Info(ctx, "chapter insight generated",
				"provider", g.Name(),
				"model", result.Model,
				"attempts", i+1,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			return entity.Succeeded(result)
		}

		reason := failureReason(err)
		failures = append(failures, entity.ProviderFailure{Provider: g.Name(), Reason: reason})
		metrics.InsightGenerationTotal.WithLabelValues(g.Name(), "failed").Inc()
		if i < len(o.chain)-1 {
			metrics.InsightFallbackTotal.WithLabelValues(g.Name()).Inc()
			logger.Warn(ctx, "provider failed, falling back",
				"provider", g.Name(),
				"next", o.chain[i+1].Name(),
				"reason", reason,
			)
		}
	}

	metrics.InsightGenerationDuration.WithLabelValues("failed").Observe(time.Since(start).Seconds())
	outcome := entity.Failed(failures...)
	logger.Error(ctx, "all providers failed", nil, "details", outcome.Details())
	return outcome
}

func (o *Orchestrator) attempt(ctx context.Context, g Generator, req entity.GenerationRequest, sourceText string) (_ *entity.GenerationResult, err error) {
	ctx, span := tracer.Start(ctx, "insight.provider."+g.Name())
	defer func() { tracer.End(span, err) }()
	return g.Generate(ctx, req, sourceText)
}

// failureReason 取面向调用方的失败原因
func failureReason(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return err.Error()
}

const (
	bothProvidersFailedMsg = "Failed to generate summary. Both OpenAI and Gemini APIs are unavailable or misconfigured."
	allProvidersFailedMsg  = "Failed to generate summary. All configured AI providers are unavailable or misconfigured."
)

// AllFailedMessage 降级链全部失败时返回给调用方的消息
func AllFailedMessage(providers []string) string {
	if len(providers) == 2 && providers[0] == "openai" && providers[1] == "gemini" {
		return bothProvidersFailedMsg
	}
	return allProvidersFailedMsg
}
