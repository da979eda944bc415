package dto

import "thelight-api/internal/domain/entity"

// GenerateInsightRequest 章节解读请求
type GenerateInsightRequest struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
}

// ToEntity 转换为领域请求
func (r *GenerateInsightRequest) ToEntity() entity.GenerationRequest {
	return entity.GenerationRequest{
		Book:    r.Book,
		Chapter: r.Chapter,
	}
}

// InsightResponse 章节解读响应
type InsightResponse struct {
	Summary   string   `json:"summary"`
	Takeaways []string `json:"takeaways"`
	Reference string   `json:"reference"`
}

// ToInsightResponse 转换为响应
func ToInsightResponse(r *entity.GenerationResult) *InsightResponse {
	if r == nil {
		return nil
	}
	takeaways := r.Takeaways
	if takeaways == nil {
		takeaways = []string{}
	}
	return &InsightResponse{
		Summary:   r.Summary,
		Takeaways: takeaways,
		Reference: r.Reference,
	}
}
