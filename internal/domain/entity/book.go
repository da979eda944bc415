package entity

// Testament 约别
type Testament string

const (
	TestamentOld Testament = "old"
	TestamentNew Testament = "new"
)

// Book 正典书卷
type Book struct {
	Name      string    `json:"name"`
	OSIS      string    `json:"osis"`
	Testament Testament `json:"testament"`
	Chapters  int       `json:"chapters"`
	Theme     string    `json:"theme,omitempty"`
	Icon      string    `json:"icon,omitempty"`
}

// HasChapter 章节号是否在本卷范围内
func (b Book) HasChapter(chapter int) bool {
	return chapter >= 1 && chapter <= b.Chapters
}
