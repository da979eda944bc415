// Package scripture 提供章节经文来源：占位文本、HTTP 接口与 Redis 缓存
package scripture

import (
	"context"

	"thelight-api/internal/domain/entity"
	"thelight-api/pkg/metrics"
)

// PlaceholderSource 不访问外部服务，返回占位文本
type PlaceholderSource struct{}

// NewPlaceholderSource 创建占位来源
func NewPlaceholderSource() *PlaceholderSource {
	return &PlaceholderSource{}
}

// ChapterText 返回占位文本
func (PlaceholderSource) ChapterText(_ context.Context, book string, chapter int) (string, error) {
	metrics.ScriptureFetchTotal.WithLabelValues("placeholder", "ok").Inc()
	return entity.PlaceholderText(book, chapter), nil
}
