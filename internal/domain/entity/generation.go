// Package entity 定义领域实体
package entity

import (
	"fmt"
	"strings"
)

// GenerationRequest 章节解读请求
type GenerationRequest struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
}

// Valid 书卷非空且章节为正整数
func (r GenerationRequest) Valid() bool {
	return strings.TrimSpace(r.Book) != "" && r.Chapter > 0
}

// Reference 经文引用，如 "John 3 (KJV)"
func (r GenerationRequest) Reference() string {
	return fmt.Sprintf("%s %d (KJV)", r.Book, r.Chapter)
}

// PlaceholderText 未接入真实经文时提示词中使用的占位文本
func PlaceholderText(book string, chapter int) string {
	return fmt.Sprintf("[Bible text for %s Chapter %d would be fetched here]", book, chapter)
}

// GenerationResult 章节解读结果，构造后不再修改
type GenerationResult struct {
	Summary   string   `json:"summary"`
	Takeaways []string `json:"takeaways"`
	Reference string   `json:"reference"`

	// 以下字段仅用于日志与指标，不对外输出
	Provider string `json:"-"`
	Model    string `json:"-"`
}

// ProviderFailure 单个提供商的失败原因
type ProviderFailure struct {
	Provider string
	Reason   string
}

// ProviderOutcome 生成结果的标签联合：Result 非空为成功，否则 Failures 记录每个已尝试提供商的失败原因
type ProviderOutcome struct {
	Result   *GenerationResult
	Failures []ProviderFailure
}

// Succeeded 构造成功结果
func Succeeded(result *GenerationResult) ProviderOutcome {
	return ProviderOutcome{Result: result}
}

// Failed 构造失败结果
func Failed(failures ...ProviderFailure) ProviderOutcome {
	return ProviderOutcome{Failures: failures}
}

// OK 是否成功
func (o ProviderOutcome) OK() bool {
	return o.Result != nil
}

// Details 以提供商名为键的失败原因
func (o ProviderOutcome) Details() map[string]string {
	out := make(map[string]string, len(o.Failures))
	for _, f := range o.Failures {
		out[f.Provider] = f.Reason
	}
	return out
}

// Providers 按尝试顺序返回失败的提供商名
func (o ProviderOutcome) Providers() []string {
	out := make([]string, 0, len(o.Failures))
	for _, f := range o.Failures {
		out = append(out, f.Provider)
	}
	return out
}
