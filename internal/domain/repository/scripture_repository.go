// Package repository 定义领域层依赖的数据来源接口
package repository

import "context"

// ScriptureSource 章节经文来源。
// 找不到章节时返回 errors.CodeChapterNotFound 错误。
type ScriptureSource interface {
	ChapterText(ctx context.Context, book string, chapter int) (string, error)
}
