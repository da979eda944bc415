// Package insight 实现章节解读：提示词构建、模型输出规范化与多提供商降级
package insight

import (
	"embed"
	"strconv"
	"strings"

	"thelight-api/internal/workflow/port"
)

//go:embed templates/*.txt
var templatesFS embed.FS

var (
	systemPrompt     = mustReadTemplate("templates/system.txt")
	userPromptLayout = mustReadTemplate("templates/chapter_insight_user.txt")
)

func mustReadTemplate(path string) string {
	b, err := templatesFS.ReadFile(path)
	if err != nil {
		panic("insight: missing embedded template " + path)
	}
	return strings.TrimSpace(string(b))
}

// BuildPrompt 构建章节解读提示词（纯函数）
//
// 占位符只替换一次且按出现顺序进行，经文中若含有 {{book}} 之类的文本不会被再次展开。
func BuildPrompt(book string, chapter int, sourceText string) port.Prompt {
	r := strings.NewReplacer(
		"{{book}}", book,
		"{{chapter}}", strconv.Itoa(chapter),
		"{{text}}", sourceText,
	)
	return port.Prompt{
		System: systemPrompt,
		User:   r.Replace(userPromptLayout),
	}
}
