package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	apperrors "thelight-api/pkg/errors"
	"thelight-api/pkg/logger"
	"thelight-api/pkg/metrics"
)

var cacheTracer = otel.Tracer("redis.cache")

// Cache 文本值读穿缓存
type Cache struct {
	rdb   redis.Cmdable
	name  string
	group singleflight.Group
}

// NewCache 创建缓存；name 用作指标标签
func NewCache(client *Client, name string) *Cache {
	return newCache(client.rdb, name)
}

func newCache(rdb redis.Cmdable, name string) *Cache {
	return &Cache{rdb: rdb, name: name}
}

// GetOrLoadSafe 读穿缓存，使用 singleflight 合并同一键的并发加载。
//
// 读缓存失败时返回 CodeCacheError，调用方可以绕过缓存；loader 的错误原样返回；
// 写缓存失败只记录日志，不影响返回结果。
func (c *Cache) GetOrLoadSafe(ctx context.Context, key string, ttl time.Duration, loader func(context.Context) (string, error)) (string, error) {
	ctx, span := cacheTracer.Start(ctx, "cache.GetOrLoadSafe",
		trace.WithAttributes(attribute.String("cache.key", key)))
	defer span.End()

	val, err := c.rdb.Get(ctx, key).Result()
	if err == nil {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		metrics.CacheRequestsTotal.WithLabelValues(c.name, "hit").Inc()
		return val, nil
	}
	if !IsNil(err) {
		span.RecordError(err)
		metrics.CacheRequestsTotal.WithLabelValues(c.name, "error").Inc()
		return "", apperrors.Wrap(err, apperrors.CodeCacheError, "cache read failed")
	}

	span.SetAttributes(attribute.Bool("cache.hit", false))
	metrics.CacheRequestsTotal.WithLabelValues(c.name, "miss").Inc()

	result, err, shared := c.group.Do(key, func() (interface{}, error) {
		// 再次检查缓存（可能已被其他请求填充）
		if val, err := c.rdb.Get(ctx, key).Result(); err == nil {
			return val, nil
		}

		data, err := loader(ctx)
		if err != nil {
			return nil, err
		}

		if err := c.rdb.Set(ctx, key, data, ttl).Err(); err != nil {
			span.RecordError(err)
			logger.Warn(ctx, "cache write failed", "cache", c.name, "key", key, "error", err.Error())
		}
		return data, nil
	})

	span.SetAttributes(attribute.Bool("cache.shared", shared))

	if err != nil {
		span.RecordError(err)
		return "", err
	}
	return result.(string), nil
}
