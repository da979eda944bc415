// Package handler 提供 HTTP 请求处理器
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"thelight-api/internal/config"
	"thelight-api/internal/infrastructure/persistence/redis"
)

// healthChecker 可探测的外部依赖
type healthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler 健康检查处理器
type HealthHandler struct {
	version string
	llm     *config.LLMConfig
	redis   healthChecker
}

// NewHealthHandler 创建健康检查处理器；redisClient 为空表示未启用经文缓存
func NewHealthHandler(cfg *config.Config, redisClient *redis.Client) *HealthHandler {
	h := &HealthHandler{
		version: cfg.App.Version,
		llm:     &cfg.LLM,
	}
	if redisClient != nil {
		h.redis = redisClient
	}
	return h
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

type readinessCheck struct {
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
	LatencyMs int64  `json:"latency_ms,omitempty"`
}

type readinessResponse struct {
	Status string                     `json:"status"`
	Checks map[string]*readinessCheck `json:"checks,omitempty"`
}

// Health 健康检查接口
// @Summary 健康检查
// @Description 检查服务健康状态
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: h.version,
	})
}

// Ready 就绪检查接口
//
// 提供商凭据缺失和 Redis 不可用都不会让服务拒绝流量：前者在请求中以失败详情返回，后者退化为直接读取经文。
// @Summary 就绪检查
// @Description 检查服务是否可以接收流量
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	checks := map[string]*readinessCheck{
		"providers": h.providerCheck(),
		"redis":     {Status: "disabled"},
	}

	if h.redis != nil {
		start := time.Now()
		err := h.redis.HealthCheck(ctx)
		checks["redis"].LatencyMs = time.Since(start).Milliseconds()
		if err != nil {
			checks["redis"].Status = "degraded"
			checks["redis"].Error = err.Error()
		} else {
			checks["redis"].Status = "ok"
		}
	}

	c.JSON(http.StatusOK, readinessResponse{
		Status: "ok",
		Checks: checks,
	})
}

// providerCheck 统计降级链上已配置凭据的提供商
func (h *HealthHandler) providerCheck() *readinessCheck {
	if h.llm == nil || len(h.llm.FallbackChain) == 0 {
		return &readinessCheck{Status: "missing", Error: "fallback chain is empty"}
	}
	for _, name := range h.llm.FallbackChain {
		if p, ok := h.llm.Providers[name]; ok && p.Configured() {
			return &readinessCheck{Status: "ok"}
		}
	}
	return &readinessCheck{Status: "degraded", Error: "no provider has an API key configured"}
}

// Live 存活检查接口
// @Summary 存活检查
// @Description 检查服务是否存活
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
	})
}
