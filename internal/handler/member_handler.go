package handler

import (
	"net/http"
	"strings"

	"Club_Portal/internal/middleware"
	"Club_Portal/internal/pkg"
	"Club_Portal/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const AdminSecretHeader = "x-admin-secret"

type MemberHandler struct {
	svc *service.MemberService
	log *zap.Logger
}

func NewMemberHandler(svc *service.MemberService, log *zap.Logger) *MemberHandler {
	return &MemberHandler{svc: svc, log: log}
}

func (h *MemberHandler) List(c *gin.Context) {
	page, size := pageParams(c)
	list, err := h.svc.List(c.Request.Context(), page, size)
	if err != nil {
		middleware.RespondError(c, h.log, err)
		return
	}
	listResponse(c, list, page, size)
}

func (h *MemberHandler) Get(c *gin.Context) {
	m, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// UpdateMe 只能改自己的资料
func (h *MemberHandler) UpdateMe(c *gin.Context) {
	self, ok := currentMember(c)
	if !ok {
		return
	}
	var req service.ProfileInput
	if err := pkg.BindJSON(c, &req); err != nil {
		middleware.BadRequest(c, err)
		return
	}
	m, err := h.svc.UpdateProfile(c.Request.Context(), self, req)
	if err != nil {
		middleware.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// Register 管理员登记成员：请求头 x-admin-secret 优先，其次请求体 adminSecret
func (h *MemberHandler) Register(c *gin.Context) {
	headerSecret := strings.TrimSpace(c.GetHeader(AdminSecretHeader))
	if headerSecret != "" {
		if err := h.svc.CheckAdminSecret(headerSecret); err != nil {
			middleware.RespondError(c, h.log, err)
			return
		}
	}

	var req service.RegisterInput
	if err := pkg.BindJSON(c, &req); err != nil {
		if headerSecret == "" {
			// 未通过鉴权前不暴露请求体校验细节
			var probe struct {
				AdminSecret string `json:"adminSecret"`
			}
			_ = pkg.BindJSON(c, &probe)
			if err := h.svc.CheckAdminSecret(probe.AdminSecret); err != nil {
				middleware.RespondError(c, h.log, err)
				return
			}
		}
		middleware.BadRequest(c, err)
		return
	}
	if headerSecret == "" {
		if err := h.svc.CheckAdminSecret(req.AdminSecret); err != nil {
			middleware.RespondError(c, h.log, err)
			return
		}
	}

	m, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		middleware.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}
