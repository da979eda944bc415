// Package port 定义应用层对外部能力的最小依赖
package port

import "context"

// Prompt 发送给模型的指令
type Prompt struct {
	System string
	User   string
}

// Completion 模型返回的原始文本
type Completion struct {
	Text  string
	Model string
}

// TextGenerator 单个文本生成提供商。
// 实现需自行完成凭据检查、候选模型切换与响应信封解析；失败以 error 值返回，不得 panic。
type TextGenerator interface {
	Name() string
	Generate(ctx context.Context, prompt Prompt) (*Completion, error)
}
