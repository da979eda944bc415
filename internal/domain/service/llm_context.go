// Package service 提供跨层共享的领域上下文工具
package service

import (
	"context"
	"strings"
)

type llmCtxKey string

const (
	llmCtxKeyWorkflow llmCtxKey = "llm_workflow"
	llmCtxKeyProvider llmCtxKey = "llm_provider"
)

// WorkflowChapterInsight 章节解读工作流名，用作指标标签
const WorkflowChapterInsight = "chapter_insight"

// WithWorkflowProvider 记录当前 LLM 调用所属的工作流与提供商，供 callbacks 打标签
func WithWorkflowProvider(ctx context.Context, workflow, provider string) context.Context {
	if w := strings.TrimSpace(workflow); w != "" {
		ctx = context.WithValue(ctx, llmCtxKeyWorkflow, w)
	}
	if p := strings.TrimSpace(provider); p != "" {
		ctx = context.WithValue(ctx, llmCtxKeyProvider, p)
	}
	return ctx
}

// WorkflowFromContext 读取工作流名，缺省为 unknown
func WorkflowFromContext(ctx context.Context) string {
	return valueOrUnknown(ctx, llmCtxKeyWorkflow)
}

// ProviderFromContext 读取提供商名，缺省为 unknown
func ProviderFromContext(ctx context.Context) string {
	return valueOrUnknown(ctx, llmCtxKeyProvider)
}

func valueOrUnknown(ctx context.Context, key llmCtxKey) string {
	if ctx == nil {
		return "unknown"
	}
	s, ok := ctx.Value(key).(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "unknown"
	}
	return s
}
