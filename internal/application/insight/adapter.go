package insight

import (
	"context"
	"strings"

	"thelight-api/internal/domain/entity"
	"thelight-api/internal/domain/service"
	"thelight-api/internal/workflow/port"
	apperrors "thelight-api/pkg/errors"
	"thelight-api/pkg/logger"
)

// Adapter 将一个文本生成提供商包装为章节解读生成器
type Adapter struct {
	gen port.TextGenerator
}

// NewAdapter 创建提供商适配器
func NewAdapter(gen port.TextGenerator) *Adapter {
	return &Adapter{gen: gen}
}

// Name 提供商名，用作失败详情的键
func (a *Adapter) Name() string {
	return a.gen.Name()
}

// Generate 构建提示词、调用提供商并规范化输出。
// 所有失败都以 error 值返回，调用方据此决定是否降级。
func (a *Adapter) Generate(ctx context.Context, req entity.GenerationRequest, sourceText string) (*entity.GenerationResult, error) {
	ctx = service.WithWorkflowProvider(ctx, service.WorkflowChapterInsight, a.gen.Name())

	completion, err := a.gen.Generate(ctx, BuildPrompt(req.Book, req.Chapter, sourceText))
	if err != nil {
		return nil, err
	}
	if completion == nil || strings.TrimSpace(completion.Text) == "" {
		return nil, apperrors.New(apperrors.CodeEmptyCompletion, "No content received from "+a.gen.Name())
	}

	out := Normalize(completion.Text)
	summary := out.Summary
	if summary == "" {
		summary = completion.Text
	}

	logger.Debug(ctx, "provider completion normalized",
		"provider", a.gen.Name(),
		"model", completion.Model,
		"takeaways", len(out.Takeaways),
	)

	return &entity.GenerationResult{
		Summary:   summary,
		Takeaways: out.Takeaways,
		Reference: req.Reference(),
		Provider:  a.gen.Name(),
		Model:     completion.Model,
	}, nil
}
