package handler

import (
	"net/http"
	"strconv"

	"Club_Portal/internal/middleware"
	"Club_Portal/internal/model"
	"Club_Portal/internal/pkg"

	"github.com/gin-gonic/gin"
)

// pageParams ?page=&size=，非法值交给 sqldb.Page 修正
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 50 {
		size = 20
	}
	return page, size
}

func listResponse(c *gin.Context, items any, page, size int) {
	c.JSON(http.StatusOK, gin.H{"items": items, "page": page, "size": size})
}

// currentMember 路由已挂 WalletAuth，这里只兜底
func currentMember(c *gin.Context) (*model.Member, bool) {
	m, ok := middleware.MemberFromCtx(c)
	if !ok {
		pkg.Fail(c, http.StatusUnauthorized, pkg.TagUnauthorized, "authentication required")
	}
	return m, ok
}
