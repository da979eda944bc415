package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes 注册 /api 路由
func RegisterAPIRoutes(api *gin.RouterGroup, h *RouterHandlers) {
	// 章节解读
	api.POST("/generate", h.Insight.Generate)

	// 书卷目录
	books := api.Group("/books")
	{
		books.GET("", h.Book.ListBooks)
		books.GET("/:book", h.Book.GetBook)
	}
}
