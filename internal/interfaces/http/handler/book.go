package handler

import (
	"thelight-api/internal/application/catalog"
	"thelight-api/internal/interfaces/http/dto"

	"github.com/gin-gonic/gin"
)

// BookHandler 书卷目录处理器
type BookHandler struct {
	books *catalog.Catalog
}

// NewBookHandler 创建书卷目录处理器
func NewBookHandler(books *catalog.Catalog) *BookHandler {
	return &BookHandler{books: books}
}

// ListBooks 获取书卷列表
// @Summary 获取书卷列表
// @Description 按正典顺序返回书卷，可按约别过滤
// @Tags Books
// @Produce json
// @Param testament query string false "约别 old / new"
// @Success 200 {object} dto.Response[dto.BookListResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	testament, ok := dto.BindTestament(c)
	if !ok {
		dto.BadRequest(c, "testament must be old or new")
		return
	}

	books := h.books.All()
	if testament != "" {
		books = h.books.ByTestament(testament)
	}
	dto.Success(c, dto.ToBookListResponse(books))
}

// GetBook 获取书卷详情
// @Summary 获取书卷详情
// @Description 按名称、短横线写法或 OSIS 缩写查找书卷
// @Tags Books
// @Produce json
// @Param book path string true "书卷名"
// @Success 200 {object} dto.Response[dto.BookResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/books/{book} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	book, ok := h.books.Lookup(dto.BindBookParam(c))
	if !ok {
		dto.NotFound(c, "book not found")
		return
	}
	dto.Success(c, dto.ToBookResponse(book))
}
