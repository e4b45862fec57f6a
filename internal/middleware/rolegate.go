package middleware

import (
	"net/http"

	"Club_Portal/internal/model"
	"Club_Portal/internal/pkg"

	"github.com/gin-gonic/gin"
)

// RequireRoles 必须挂在 WalletAuth 之后
func RequireRoles(allow ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, ok := MemberFromCtx(c)
		if !ok {
			pkg.Fail(c, http.StatusUnauthorized, pkg.TagUnauthorized, "authentication required")
			return
		}
		if !model.Allowed(m.Role, allow) {
			pkg.Fail(c, http.StatusForbidden, pkg.TagForbidden, "your role is not allowed to perform this action")
			return
		}
		c.Next()
	}
}

// RequireCapability 白名单从能力表推导
func RequireCapability(a model.Action) gin.HandlerFunc {
	return RequireRoles(model.RolesFor(a)...)
}
