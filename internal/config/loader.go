// Package config 提供配置加载功能
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

// envPlaceholder 匹配 ${VAR} 或 ${VAR:default}
// g1: 变量名, g2: 默认值部分（含冒号）, g3: 默认值内容
var envPlaceholder = regexp.MustCompile(`\${(\w+)(:([^}]*))?}`)

// credentialEnv 提供商凭据的环境变量（每个提供商一个变量）
var credentialEnv = map[string]string{
	"llm.providers.openai.api_key": "OPENAI_API_KEY",
	"llm.providers.gemini.api_key": "GOOGLE_API_KEY",
}

// Load 加载配置文件
// 按优先级加载：默认配置 -> 环境配置 -> 环境变量
func Load() (*Config, error) {
	return LoadFrom("configs")
}

// LoadFrom 从指定目录加载 config.yaml 与 config.<APP_ENV>.yaml
func LoadFrom(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// 1. 加载默认配置
	if err := loadConfigFile(v, filepath.Join(dir, "config.yaml"), false); err != nil {
		return nil, err
	}

	// 2. 加载环境特定配置
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	envFile := filepath.Join(dir, fmt.Sprintf("config.%s.yaml", env))
	if err := loadConfigFile(v, envFile, true); err != nil {
		return nil, err
	}

	// 3. 绑定环境变量 (直接覆盖)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key, envName := range credentialEnv {
		if err := v.BindEnv(key, envName); err != nil {
			return nil, fmt.Errorf("failed to bind env %s: %w", envName, err)
		}
	}

	// 设置默认值 (兜底)
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadConfigFile 读取文件，执行环境变量替换，并加载到 viper
func loadConfigFile(v *viper.Viper, path string, optional bool) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	expanded := expandEnv(string(content))

	reader := strings.NewReader(expanded)
	if v.ConfigFileUsed() == "" {
		if err := v.ReadConfig(reader); err != nil {
			return fmt.Errorf("failed to read processed config %s: %w", path, err)
		}
		// 手动标记已加载文件，防止后续 ReadInConfig 报错
		v.SetConfigFile(path)
	} else {
		if err := v.MergeConfig(reader); err != nil {
			return fmt.Errorf("failed to merge processed config %s: %w", path, err)
		}
	}

	return nil
}

// expandEnv 替换字符串中的 ${VAR:default} 占位符
func expandEnv(s string) string {
	return envPlaceholder.ReplaceAllStringFunc(s, func(match string) string {
		submatch := envPlaceholder.FindStringSubmatch(match)
		key := submatch[1]
		hasDefault := submatch[2] != ""
		defVal := submatch[3]

		if val, ok := os.LookupEnv(key); ok {
			return val
		}
		if hasDefault {
			return defVal
		}
		// 保留原样以便识别未定义的变量
		return match
	})
}

// MustLoad 加载配置，失败时 panic
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// normalize 补齐提供商类型并清理列表中的空白项
func (c *Config) normalize() {
	for name, p := range c.LLM.Providers {
		if strings.TrimSpace(p.Type) == "" {
			p.Type = name
		}
		p.Type = strings.ToLower(strings.TrimSpace(p.Type))
		p.APIKey = strings.TrimSpace(p.APIKey)
		p.Models = compact(p.Models)
		c.LLM.Providers[name] = p
	}
	c.LLM.FallbackChain = compact(c.LLM.FallbackChain)
}

// Validate 校验配置的结构完整性（凭据缺失不是错误）
func (c *Config) Validate() error {
	if len(c.LLM.FallbackChain) == 0 {
		return fmt.Errorf("llm.fallback_chain must name at least one provider")
	}
	for _, name := range c.LLM.FallbackChain {
		p, ok := c.LLM.Providers[name]
		if !ok {
			return fmt.Errorf("llm provider %q in fallback_chain is not configured", name)
		}
		switch p.Type {
		case ProviderTypeOpenAI, ProviderTypeGemini:
		default:
			return fmt.Errorf("llm provider %q has unsupported type %q", name, p.Type)
		}
		if len(p.Models) == 0 {
			return fmt.Errorf("llm provider %q has no models", name)
		}
	}
	switch c.Scripture.Source {
	case "", "placeholder":
	case "http":
		if strings.TrimSpace(c.Scripture.URLTemplate) == "" {
			return fmt.Errorf("scripture.url_template is required for the http source")
		}
	default:
		return fmt.Errorf("unsupported scripture.source %q", c.Scripture.Source)
	}
	return nil
}

func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// setDefaults 设置配置默认值
func setDefaults(v *viper.Viper) {
	// 应用默认值
	v.SetDefault("app.name", "thelight-api")
	v.SetDefault("app.version", "v0.0.0")
	v.SetDefault("app.env", "development")

	// HTTP 服务器默认值
	v.SetDefault("server.http.host", "0.0.0.0")
	v.SetDefault("server.http.port", 8080)
	v.SetDefault("server.http.read_timeout", "30s")
	v.SetDefault("server.http.write_timeout", "120s")
	v.SetDefault("server.http.idle_timeout", "120s")

	// LLM 默认值：openai 优先，gemini 兜底
	v.SetDefault("llm.fallback_chain", []string{"openai", "gemini"})
	v.SetDefault("llm.providers.openai.type", ProviderTypeOpenAI)
	v.SetDefault("llm.providers.openai.display_name", "OpenAI")
	v.SetDefault("llm.providers.openai.credential_name", "OpenAI")
	v.SetDefault("llm.providers.openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("llm.providers.openai.models", []string{"gpt-4o-mini"})
	v.SetDefault("llm.providers.openai.max_tokens", 1500)
	v.SetDefault("llm.providers.openai.temperature", 0.7)
	v.SetDefault("llm.providers.openai.json_mode", true)
	v.SetDefault("llm.providers.gemini.type", ProviderTypeGemini)
	v.SetDefault("llm.providers.gemini.display_name", "Gemini")
	v.SetDefault("llm.providers.gemini.credential_name", "Google")
	v.SetDefault("llm.providers.gemini.api_version", "v1beta")
	v.SetDefault("llm.providers.gemini.models", []string{"gemini-3-flash-preview"})
	v.SetDefault("llm.providers.gemini.max_tokens", 2000)
	v.SetDefault("llm.providers.gemini.temperature", 0.7)
	v.SetDefault("llm.providers.gemini.json_mode", true)

	// 经文来源默认值
	v.SetDefault("scripture.source", "placeholder")
	v.SetDefault("scripture.translation", "kjv")
	v.SetDefault("scripture.format", "json")
	v.SetDefault("scripture.json_path", "text")
	v.SetDefault("scripture.html_selector", ".verse")
	v.SetDefault("scripture.timeout", "10s")
	v.SetDefault("scripture.cache.enabled", false)
	v.SetDefault("scripture.cache.ttl", "168h")

	// Redis 默认值
	v.SetDefault("cache.redis.host", "localhost")
	v.SetDefault("cache.redis.port", 6379)
	v.SetDefault("cache.redis.db", 0)
	v.SetDefault("cache.redis.pool_size", 20)
	v.SetDefault("cache.redis.min_idle_conns", 2)
	v.SetDefault("cache.redis.dial_timeout", "5s")
	v.SetDefault("cache.redis.read_timeout", "3s")
	v.SetDefault("cache.redis.write_timeout", "3s")

	// 可观测性默认值
	v.SetDefault("observability.logging.level", "info")
	v.SetDefault("observability.logging.format", "json")
	v.SetDefault("observability.tracing.enabled", false)
	v.SetDefault("observability.tracing.endpoint", "localhost:4317")
	v.SetDefault("observability.tracing.sample_rate", 1.0)
	v.SetDefault("observability.metrics.enabled", true)
	v.SetDefault("observability.metrics.path", "/metrics")
}
