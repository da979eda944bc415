// Package catalog 提供正典书卷目录：名称规范化、章节范围与主题信息
package catalog

import (
	"strings"

	"thelight-api/internal/domain/entity"
)

// 常见别名
var aliases = map[string]string{
	"psalm":         "Psalms",
	"song of songs": "Song of Solomon",
	"canticles":     "Song of Solomon",
	"revelations":   "Revelation",
}

// Catalog 正典目录，只读，可并发使用
type Catalog struct {
	books []entity.Book
	index map[string]int
}

// New 创建正典目录
func New() *Catalog {
	c := &Catalog{
		books: canon,
		index: make(map[string]int, len(canon)*3),
	}
	for i, b := range canon {
		c.index[normalizeKey(b.Name)] = i
		c.index[normalizeKey(b.OSIS)] = i
	}
	for alias, name := range aliases {
		if i, ok := c.index[normalizeKey(name)]; ok {
			c.index[normalizeKey(alias)] = i
		}
	}
	return c
}

// Lookup 按书名、slug（如 1-samuel）或 OSIS 编号查找书卷，大小写不敏感
func (c *Catalog) Lookup(name string) (entity.Book, bool) {
	i, ok := c.index[normalizeKey(name)]
	if !ok {
		return entity.Book{}, false
	}
	return c.books[i], true
}

// All 按正典顺序返回全部书卷
func (c *Catalog) All() []entity.Book {
	return append([]entity.Book(nil), c.books...)
}

// ByTestament 返回指定约的书卷；testament 为空时返回全部
func (c *Catalog) ByTestament(t entity.Testament) []entity.Book {
	if t == "" {
		return c.All()
	}
	out := make([]entity.Book, 0, len(c.books))
	for _, b := range c.books {
		if b.Testament == t {
			out = append(out, b)
		}
	}
	return out
}

func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
