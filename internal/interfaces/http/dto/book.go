package dto

import "thelight-api/internal/domain/entity"

// BookResponse 书卷响应
type BookResponse struct {
	Name      string `json:"name"`
	OSIS      string `json:"osis"`
	Testament string `json:"testament"`
	Chapters  int    `json:"chapters"`
	Theme     string `json:"theme,omitempty"`
	Icon      string `json:"icon,omitempty"`
}

// BookListResponse 书卷列表响应
type BookListResponse struct {
	Books []*BookResponse `json:"books"`
	Total int             `json:"total"`
}

// ToBookResponse 转换为响应
func ToBookResponse(b entity.Book) *BookResponse {
	return &BookResponse{
		Name:      b.Name,
		OSIS:      b.OSIS,
		Testament: string(b.Testament),
		Chapters:  b.Chapters,
		Theme:     b.Theme,
		Icon:      b.Icon,
	}
}

// ToBookListResponse 转换为列表响应
func ToBookListResponse(books []entity.Book) *BookListResponse {
	items := make([]*BookResponse, len(books))
	for i, b := range books {
		items[i] = ToBookResponse(b)
	}
	return &BookListResponse{
		Books: items,
		Total: len(items),
	}
}
