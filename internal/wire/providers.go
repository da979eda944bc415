package wire

import (
	"context"
	"fmt"
	"strings"

	"thelight-api/internal/application/catalog"
	"thelight-api/internal/application/insight"
	"thelight-api/internal/config"
	"thelight-api/internal/domain/repository"
	"thelight-api/internal/infrastructure/llm"
	"thelight-api/internal/infrastructure/persistence/redis"
	"thelight-api/internal/infrastructure/scripture"
	"thelight-api/pkg/logger"
)

// 经文来源类型
const (
	scriptureSourcePlaceholder = "placeholder"
	scriptureSourceHTTP        = "http"
)

// ProvideRedisClientOptional 提供 Redis 客户端；未启用经文缓存或连接失败时返回 nil，不阻塞启动
func ProvideRedisClientOptional(ctx context.Context, cfg *config.Config) (*redis.Client, func(), error) {
	if !cfg.Scripture.Cache.Enabled {
		return nil, func() {}, nil
	}
	client, err := redis.NewClient(ctx, &cfg.Cache.Redis)
	if err != nil {
		logger.Warn(ctx, "redis unavailable, scripture cache disabled", "error", err.Error())
		return nil, func() {}, nil
	}
	cleanup := func() {
		if err := client.Close(); err != nil {
			logger.Warn(context.Background(), "failed to close redis client", "error", err.Error())
		}
	}
	return client, cleanup, nil
}

// ProvideScriptureSource 按配置选择经文来源，HTTP 来源在 Redis 可用时加缓存
func ProvideScriptureSource(cfg *config.Config, books *catalog.Catalog, redisClient *redis.Client) (repository.ScriptureSource, error) {
	sc := cfg.Scripture
	switch strings.ToLower(strings.TrimSpace(sc.Source)) {
	case "", scriptureSourcePlaceholder:
		return scripture.NewPlaceholderSource(), nil
	case scriptureSourceHTTP:
		if strings.TrimSpace(sc.URLTemplate) == "" {
			return nil, fmt.Errorf("scripture.url_template is required for http source")
		}
		var src repository.ScriptureSource = scripture.NewHTTPSource(&sc, osisResolver(books))
		if redisClient != nil {
			src = scripture.NewCachedSource(src, redis.NewCache(redisClient, "scripture"), sc.Translation, sc.Cache.TTL)
		}
		return src, nil
	default:
		return nil, fmt.Errorf("unsupported scripture source %q", sc.Source)
	}
}

func osisResolver(books *catalog.Catalog) scripture.OSISResolver {
	return func(name string) (string, bool) {
		b, ok := books.Lookup(name)
		if !ok {
			return "", false
		}
		return b.OSIS, true
	}
}

// ProvideGeneratorChain 按 fallback_chain 创建提供商适配器
func ProvideGeneratorChain(cfg *config.Config) ([]insight.Generator, error) {
	gens, err := llm.BuildChain(&cfg.LLM)
	if err != nil {
		return nil, err
	}
	chain := make([]insight.Generator, 0, len(gens))
	for _, g := range gens {
		chain = append(chain, insight.NewAdapter(g))
	}
	return chain, nil
}

// ProvideOrchestrator 提供降级编排器
func ProvideOrchestrator(chain []insight.Generator) *insight.Orchestrator {
	return insight.NewOrchestrator(chain...)
}
