package dto

import (
	"strings"

	"thelight-api/internal/domain/entity"

	"github.com/gin-gonic/gin"
)

// BindBookParam 从路径参数获取书卷名
func BindBookParam(c *gin.Context) string {
	return strings.TrimSpace(c.Param("book"))
}

// BindTestament 从查询参数获取约别，未指定或无法识别时返回空
func BindTestament(c *gin.Context) (entity.Testament, bool) {
	switch strings.ToLower(strings.TrimSpace(c.Query("testament"))) {
	case "":
		return "", true
	case string(entity.TestamentOld), "ot":
		return entity.TestamentOld, true
	case string(entity.TestamentNew), "nt":
		return entity.TestamentNew, true
	default:
		return "", false
	}
}
