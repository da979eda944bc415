package handler

import (
	"context"
	"net/http"

	"thelight-api/internal/application/insight"
	"thelight-api/internal/domain/entity"
	"thelight-api/internal/interfaces/http/dto"
	"thelight-api/pkg/errors"
	"thelight-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// InsightGenerator 章节解读用例
type InsightGenerator interface {
	Generate(ctx context.Context, req entity.GenerationRequest) (entity.ProviderOutcome, error)
	Providers() []string
}

// InsightHandler 章节解读处理器
type InsightHandler struct {
	generator InsightGenerator
}

// NewInsightHandler 创建章节解读处理器
func NewInsightHandler(service *insight.ChapterService) *InsightHandler {
	return &InsightHandler{generator: service}
}

// Generate 生成章节解读
// @Summary 生成章节解读
// @Description 依次尝试降级链上的提供商，返回章节摘要与生活应用
// @Tags Insights
// @Accept json
// @Produce json
// @Param body body dto.GenerateInsightRequest true "书卷与章节"
// @Success 200 {object} dto.InsightResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/generate [post]
func (h *InsightHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.GenerateInsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Debug(ctx, "invalid generate request body", "error", err.Error())
		dto.BadRequest(c, insight.MsgBookAndChapterRequired)
		return
	}

	outcome, err := h.generator.Generate(ctx, req.ToEntity())
	if err != nil {
		if errors.IsAppError(err) {
			appErr := errors.AsAppError(err)
			if appErr.HTTPStatus < http.StatusInternalServerError {
				dto.Error(c, appErr.HTTPStatus, appErr.Message)
				return
			}
		}
		logger.Error(ctx, "failed to generate insight", err)
		dto.InternalError(c, dto.MsgUnexpected)
		return
	}

	if !outcome.OK() {
		dto.ErrorWithDetails(c, http.StatusInternalServerError,
			insight.AllFailedMessage(h.generator.Providers()),
			outcome.Details(),
		)
		return
	}

	logger.Info(ctx, "insight generated",
		"reference", outcome.Result.Reference,
		"provider", outcome.Result.Provider,
		"model", outcome.Result.Model,
	)
	c.JSON(http.StatusOK, dto.ToInsightResponse(outcome.Result))
}
