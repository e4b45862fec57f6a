package handler

import (
	"net/http"

	"Club_Portal/internal/middleware"
	"Club_Portal/internal/model"
	"Club_Portal/internal/pkg"
	"Club_Portal/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	svc *service.AuthService
	log *zap.Logger
}

type LoginReq struct {
	WalletAddress string `json:"walletAddress"`
	Signature     string `json:"signature"`
}

type RefreshReq struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LoginResp 成员记录本身加上 token
type LoginResp struct {
	model.Member
	Tokens *pkg.Pair `json:"tokens"`
}

func NewAuthHandler(svc *service.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: log}
}

// Nonce GET /api/auth/nonce?wallet=
func (h *AuthHandler) Nonce(c *gin.Context) {
	ch, err := h.svc.Nonce(c.Request.Context(), c.Query("wallet"))
	if err != nil {
		middleware.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, ch)
}

// Login 钱包登录
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginReq
	if err := pkg.BindJSON(c, &req); err != nil {
		middleware.BadRequest(c, err)
		return
	}
	m, pair, err := h.svc.Login(c.Request.Context(), req.WalletAddress, req.Signature)
	if err != nil {
		middleware.RespondError(c, h.log, err)
		return
	}
	// 未签名登录只证明知道地址，不返回银行信息
	member := m.Public()
	if req.Signature != "" {
		member = *m
	}
	c.JSON(http.StatusOK, LoginResp{Member: member, Tokens: pair})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshReq
	if err := pkg.BindJSON(c, &req); err != nil {
		middleware.BadRequest(c, err)
		return
	}
	pair, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		middleware.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	m, ok := currentMember(c)
	if !ok {
		return
	}
	if err := h.svc.Logout(c.Request.Context(), m.ID); err != nil {
		middleware.RespondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Me 当前登录成员；签名证明过的身份才带银行信息
func (h *AuthHandler) Me(c *gin.Context) {
	m, ok := currentMember(c)
	if !ok {
		return
	}
	if !middleware.IdentityVerified(c) {
		c.JSON(http.StatusOK, m.Public())
		return
	}
	c.JSON(http.StatusOK, m)
}
