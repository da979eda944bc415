// Package config 提供配置加载和管理功能
package config

import (
	"strings"
	"time"
)

// Config 应用配置根结构
type Config struct {
	App           AppConfig           `yaml:"app" mapstructure:"app"`
	Server        ServerConfig        `yaml:"server" mapstructure:"server"`
	LLM           LLMConfig           `yaml:"llm" mapstructure:"llm"`
	Scripture     ScriptureConfig     `yaml:"scripture" mapstructure:"scripture"`
	Cache         CacheConfig         `yaml:"cache" mapstructure:"cache"`
	Observability ObservabilityConfig `yaml:"observability" mapstructure:"observability"`
	Security      SecurityConfig      `yaml:"security" mapstructure:"security"`
}

// AppConfig 应用基础配置
type AppConfig struct {
	Name    string `yaml:"name" mapstructure:"name"`
	Version string `yaml:"version" mapstructure:"version"`
	Env     string `yaml:"env" mapstructure:"env"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	HTTP HTTPServerConfig `yaml:"http" mapstructure:"http"`
}

// HTTPServerConfig HTTP 服务器配置
type HTTPServerConfig struct {
	Host         string        `yaml:"host" mapstructure:"host"`
	Port         int           `yaml:"port" mapstructure:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" mapstructure:"idle_timeout"`
}

// 支持的 LLM 提供商类型
const (
	ProviderTypeOpenAI = "openai"
	ProviderTypeGemini = "gemini"
)

// LLMConfig LLM 配置
type LLMConfig struct {
	Providers     map[string]ProviderConfig `yaml:"providers" mapstructure:"providers"`
	FallbackChain []string                  `yaml:"fallback_chain" mapstructure:"fallback_chain"`
}

// ProviderConfig LLM 提供商配置
//
// APIKey 为空表示该提供商不可用：调用时直接失败，不发起网络请求。
// Models 是按顺序尝试的候选模型列表，首个成功即返回。
type ProviderConfig struct {
	Type           string        `yaml:"type" mapstructure:"type"`
	DisplayName    string        `yaml:"display_name" mapstructure:"display_name"`
	CredentialName string        `yaml:"credential_name" mapstructure:"credential_name"`
	APIKey         string        `yaml:"api_key" mapstructure:"api_key"`
	BaseURL        string        `yaml:"base_url" mapstructure:"base_url"`
	APIVersion     string        `yaml:"api_version" mapstructure:"api_version"`
	Models         []string      `yaml:"models" mapstructure:"models"`
	MaxTokens      int           `yaml:"max_tokens" mapstructure:"max_tokens"`
	Temperature    float64       `yaml:"temperature" mapstructure:"temperature"`
	JSONMode       bool          `yaml:"json_mode" mapstructure:"json_mode"`
	Timeout        time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// Name 返回用于错误消息的展示名
func (p ProviderConfig) Name(fallback string) string {
	if n := strings.TrimSpace(p.DisplayName); n != "" {
		return n
	}
	return fallback
}

// KeyName 返回凭据缺失提示中使用的名称（如 Gemini 的凭据称为 Google API key）
func (p ProviderConfig) KeyName(fallback string) string {
	if n := strings.TrimSpace(p.CredentialName); n != "" {
		return n
	}
	return p.Name(fallback)
}

// Configured 判断凭据是否已配置
func (p ProviderConfig) Configured() bool {
	return strings.TrimSpace(p.APIKey) != ""
}

// ScriptureConfig 经文来源配置
type ScriptureConfig struct {
	// Source 来源类型：placeholder / http
	Source      string `yaml:"source" mapstructure:"source"`
	Translation string `yaml:"translation" mapstructure:"translation"`

	// URLTemplate 支持 {book} {chapter} {osis} 占位符
	URLTemplate  string               `yaml:"url_template" mapstructure:"url_template"`
	Format       string               `yaml:"format" mapstructure:"format"`
	JSONPath     string               `yaml:"json_path" mapstructure:"json_path"`
	HTMLSelector string               `yaml:"html_selector" mapstructure:"html_selector"`
	Timeout      time.Duration        `yaml:"timeout" mapstructure:"timeout"`
	Cache        ScriptureCacheConfig `yaml:"cache" mapstructure:"cache"`
}

// ScriptureCacheConfig 经文缓存配置
type ScriptureCacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// CacheConfig 缓存配置
type CacheConfig struct {
	Redis RedisConfig `yaml:"redis" mapstructure:"redis"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Host         string        `yaml:"host" mapstructure:"host"`
	Port         int           `yaml:"port" mapstructure:"port"`
	Password     string        `yaml:"password" mapstructure:"password"`
	DB           int           `yaml:"db" mapstructure:"db"`
	PoolSize     int           `yaml:"pool_size" mapstructure:"pool_size"`
	MinIdleConns int           `yaml:"min_idle_conns" mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `yaml:"dial_timeout" mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
}

// ObservabilityConfig 可观测性配置
type ObservabilityConfig struct {
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
	Tracing TracingConfig `yaml:"tracing" mapstructure:"tracing"`
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

// LoggingConfig 日志配置
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// TracingConfig 追踪配置
type TracingConfig struct {
	Enabled    bool    `yaml:"enabled" mapstructure:"enabled"`
	Endpoint   string  `yaml:"endpoint" mapstructure:"endpoint"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate"`
}

// MetricsConfig 指标配置
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Path    string `yaml:"path" mapstructure:"path"`
}

// SecurityConfig 安全配置
type SecurityConfig struct {
	CORS CORSConfig `yaml:"cors" mapstructure:"cors"`
}

// CORSConfig CORS 配置
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
	AllowedMethods []string `yaml:"allowed_methods" mapstructure:"allowed_methods"`
	AllowedHeaders []string `yaml:"allowed_headers" mapstructure:"allowed_headers"`
}
