package insight

import (
	"context"
	"errors"
	"strings"

	"thelight-api/internal/application/catalog"
	"thelight-api/internal/domain/entity"
	"thelight-api/internal/domain/repository"
	apperrors "thelight-api/pkg/errors"
	"thelight-api/pkg/logger"
)

// MsgBookAndChapterRequired 请求缺少书卷或章节时的错误消息
const MsgBookAndChapterRequired = "Book and chapter are required"

// ChapterService 章节解读用例：校验请求、获取经文、调用降级链
type ChapterService struct {
	books        *catalog.Catalog
	source       repository.ScriptureSource
	orchestrator *Orchestrator
}

// NewChapterService 创建章节解读服务；source 为空时使用占位经文
func NewChapterService(books *catalog.Catalog, source repository.ScriptureSource, orchestrator *Orchestrator) *ChapterService {
	return &ChapterService{
		books:        books,
		source:       source,
		orchestrator: orchestrator,
	}
}

// Providers 降级链上的提供商名
func (s *ChapterService) Providers() []string {
	return s.orchestrator.Providers()
}

// Generate 生成章节解读。
// 返回的 error 仅表示请求无效或章节不存在；提供商失败体现在 ProviderOutcome 中。
func (s *ChapterService) Generate(ctx context.Context, req entity.GenerationRequest) (entity.ProviderOutcome, error) {
	req, err := s.validate(req)
	if err != nil {
		return entity.ProviderOutcome{}, err
	}

	text, err := s.sourceText(ctx, req)
	if err != nil {
		return entity.ProviderOutcome{}, err
	}

	return s.orchestrator.Generate(ctx, req, text), nil
}

// validate 检查必填字段；已知书卷规范为正典名称并检查章节范围，未知书卷原样放行
func (s *ChapterService) validate(req entity.GenerationRequest) (entity.GenerationRequest, error) {
	req.Book = strings.TrimSpace(req.Book)
	if !req.Valid() {
		return req, apperrors.New(apperrors.CodeInvalidParam, MsgBookAndChapterRequired)
	}
	if s.books == nil {
		return req, nil
	}
	book, ok := s.books.Lookup(req.Book)
	if !ok {
		return req, nil
	}
	if !book.HasChapter(req.Chapter) {
		return req, apperrors.Newf(apperrors.CodeInvalidParam,
			"Chapter %d is out of range for %s (1-%d)", req.Chapter, book.Name, book.Chapters)
	}
	req.Book = book.Name
	return req, nil
}

// sourceText 获取章节经文；章节不存在时返回错误，其余来源错误降级为占位文本
func (s *ChapterService) sourceText(ctx context.Context, req entity.GenerationRequest) (string, error) {
	if s.source == nil {
		return entity.PlaceholderText(req.Book, req.Chapter), nil
	}
	text, err := s.source.ChapterText(ctx, req.Book, req.Chapter)
	if err == nil && strings.TrimSpace(text) != "" {
		return text, nil
	}
	if errors.Is(err, apperrors.ErrChapterNotFound) {
		return "", err
	}
	if err != nil {
		logger.Warn(ctx, "scripture source failed, using placeholder text",
			"book", req.Book,
			"chapter", req.Chapter,
			"error", err.Error(),
		)
	}
	return entity.PlaceholderText(req.Book, req.Chapter), nil
}
