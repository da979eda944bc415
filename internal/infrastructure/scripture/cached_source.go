package scripture

import (
	"context"
	"fmt"
	"time"

	"thelight-api/internal/domain/repository"
	apperrors "thelight-api/pkg/errors"
	"thelight-api/pkg/logger"
)

// TextCache 读穿缓存
type TextCache interface {
	GetOrLoadSafe(ctx context.Context, key string, ttl time.Duration, loader func(context.Context) (string, error)) (string, error)
}

// CachedSource 为经文来源加一层缓存；缓存不可用时直接访问底层来源
type CachedSource struct {
	next        repository.ScriptureSource
	cache       TextCache
	translation string
	ttl         time.Duration
}

// NewCachedSource 创建带缓存的经文来源
func NewCachedSource(next repository.ScriptureSource, cache TextCache, translation string, ttl time.Duration) *CachedSource {
	return &CachedSource{
		next:        next,
		cache:       cache,
		translation: translation,
		ttl:         ttl,
	}
}

// ChapterText 先查缓存，未命中时加载并回填
func (s *CachedSource) ChapterText(ctx context.Context, book string, chapter int) (string, error) {
	key := cacheKey(s.translation, book, chapter)
	text, err := s.cache.GetOrLoadSafe(ctx, key, s.ttl, func(ctx context.Context) (string, error) {
		return s.next.ChapterText(ctx, book, chapter)
	})
	if err == nil {
		return text, nil
	}
	if apperrors.HasCode(err, apperrors.CodeCacheError) {
		logger.Warn(ctx, "scripture cache unavailable, reading source directly", "key", key, "error", err.Error())
		return s.next.ChapterText(ctx, book, chapter)
	}
	return "", err
}

func cacheKey(translation, book string, chapter int) string {
	return fmt.Sprintf("scripture:%s:%s:%d", translation, book, chapter)
}
