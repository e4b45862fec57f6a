package middleware

import (
	"net/http"
	"strings"

	"Club_Portal/internal/model"
	"Club_Portal/internal/pkg"
	"Club_Portal/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ContextMemberKey   = "member"
	ContextVerifiedKey = "member_verified"
)

type WalletAuthConfig struct {
	Auth     *service.AuthService
	Resolver *service.WalletResolver
	// AllowWalletHeader 兼容旧客户端直接携带 x-wallet-address
	AllowWalletHeader bool
	Log               *zap.Logger
}

// WalletAuth 优先 Bearer token，其次（允许时）钱包请求头；每次请求都重新解析成员
func WalletAuth(cfg WalletAuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			m        *model.Member
			err      error
			verified bool
		)
		authHeader := c.GetHeader("Authorization")
		wallet := strings.TrimSpace(c.GetHeader(pkg.WalletHeader))

		switch {
		case authHeader != "":
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
				pkg.Fail(c, http.StatusUnauthorized, pkg.TagUnauthorized, "invalid authorization format")
				return
			}
			m, err = cfg.Auth.Authenticate(c.Request.Context(), strings.TrimSpace(parts[1]))
			// 强制签名登录时 token 必然来自签名校验
			verified = cfg.Auth.RequireSignature()
		case wallet != "" && cfg.AllowWalletHeader:
			m, err = cfg.Resolver.Resolve(c.Request.Context(), wallet)
		default:
			pkg.Fail(c, http.StatusUnauthorized, pkg.TagUnauthorized, "authentication required")
			return
		}
		if err != nil {
			RespondError(c, cfg.Log, err)
			return
		}

		c.Set(ContextMemberKey, m)
		c.Set(ContextVerifiedKey, verified)
		c.Next()
	}
}

func MemberFromCtx(c *gin.Context) (*model.Member, bool) {
	v, ok := c.Get(ContextMemberKey)
	if !ok {
		return nil, false
	}
	m, ok := v.(*model.Member)
	return m, ok && m != nil
}

// IdentityVerified 身份是否经过钱包签名证明；只凭地址的请求不能看到敏感字段
func IdentityVerified(c *gin.Context) bool {
	return c.GetBool(ContextVerifiedKey)
}
