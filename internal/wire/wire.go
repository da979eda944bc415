//go:build wireinject
// +build wireinject

// Package wire 提供依赖注入配置
package wire

import (
	"context"

	"github.com/google/wire"

	"thelight-api/internal/application/catalog"
	"thelight-api/internal/application/insight"
	"thelight-api/internal/config"
	"thelight-api/internal/interfaces/http/handler"
	"thelight-api/internal/interfaces/http/router"
)

// InitializeApp 初始化整个应用（带路由器）
func InitializeApp(ctx context.Context, cfg *config.Config) (*router.Router, func(), error) {
	wire.Build(
		RedisSet,
		ScriptureSet,
		InsightSet,
		RouterSet,
	)
	return nil, nil, nil
}

// RedisSet Redis 提供者集合（可选）
var RedisSet = wire.NewSet(
	ProvideRedisClientOptional,
)

// ScriptureSet 经文来源提供者集合
var ScriptureSet = wire.NewSet(
	catalog.New,
	ProvideScriptureSource,
)

// InsightSet 章节解读提供者集合
var InsightSet = wire.NewSet(
	ProvideGeneratorChain,
	ProvideOrchestrator,
	insight.NewChapterService,
)

// RouterSet 路由器提供者集合
var RouterSet = wire.NewSet(
	handler.NewHealthHandler,
	handler.NewInsightHandler,
	handler.NewBookHandler,
	wire.Struct(new(router.RouterHandlers), "*"),
	router.NewWithDeps,
)
