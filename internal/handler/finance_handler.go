package handler

import (
	"errors"
	"net/http"

	"Club_Portal/internal/middleware"
	"Club_Portal/internal/pkg"
	"Club_Portal/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FinanceHandler struct {
	svc *service.FinanceService
	log *zap.Logger
}

func NewFinanceHandler(svc *service.FinanceService, log *zap.Logger) *FinanceHandler {
	return &FinanceHandler{svc: svc, log: log}
}

// List ?status=pending&requestedBy=<memberID>
func (h *FinanceHandler) List(c *gin.Context) {
	page, size := pageParams(c)
	list, err := h.svc.List(c.Request.Context(), c.Query("status"), c.Query("requestedBy"), page, size)
	if err != nil {
		middleware.RespondError(c, h.log, err)
		return
	}
	listResponse(c, list, page, size)
}

func (h *FinanceHandler) Get(c *gin.Context) {
	f, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *FinanceHandler) Create(c *gin.Context) {
	actor, ok := currentMember(c)
	if !ok {
		return
	}
	var req service.FinanceInput
	if err := pkg.BindJSON(c, &req); err != nil {
		middleware.BadRequest(c, err)
		return
	}
	f, err := h.svc.Create(c.Request.Context(), actor, req)
	if err != nil {
		middleware.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, f)
}

func (h *FinanceHandler) Approve(c *gin.Context) {
	h.review(c, true)
}

func (h *FinanceHandler) Reject(c *gin.Context) {
	h.review(c, false)
}

// review 审核备注可选，允许空请求体
func (h *FinanceHandler) review(c *gin.Context, approve bool) {
	actor, ok := currentMember(c)
	if !ok {
		return
	}
	var req service.ReviewInput
	if c.Request.ContentLength != 0 {
		if err := pkg.BindJSON(c, &req); err != nil && !errors.Is(err, pkg.ErrEmptyBody) {
			middleware.BadRequest(c, err)
			return
		}
	}
	var err error
	var out any
	if approve {
		out, err = h.svc.Approve(c.Request.Context(), actor, c.Param("id"), req.Note)
	} else {
		out, err = h.svc.Reject(c.Request.Context(), actor, c.Param("id"), req.Note)
	}
	if err != nil {
		middleware.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
