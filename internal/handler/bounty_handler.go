package handler

import (
	"net/http"

	"Club_Portal/internal/middleware"
	"Club_Portal/internal/pkg"
	"Club_Portal/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BountyHandler struct {
	svc *service.BountyService
	log *zap.Logger
}

func NewBountyHandler(svc *service.BountyService, log *zap.Logger) *BountyHandler {
	return &BountyHandler{svc: svc, log: log}
}

func (h *BountyHandler) List(c *gin.Context) {
	page, size := pageParams(c)
	list, err := h.svc.List(c.Request.Context(), c.Query("status"), page, size)
	if err != nil {
		middleware.RespondError(c, h.log, err)
		return
	}
	listResponse(c, list, page, size)
}

func (h *BountyHandler) Get(c *gin.Context) {
	b, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BountyHandler) Create(c *gin.Context) {
	actor, ok := currentMember(c)
	if !ok {
		return
	}
	var req service.BountyInput
	if err := pkg.BindJSON(c, &req); err != nil {
		middleware.BadRequest(c, err)
		return
	}
	b, err := h.svc.Create(c.Request.Context(), actor, req)
	if err != nil {
		middleware.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *BountyHandler) Claim(c *gin.Context) {
	actor, ok := currentMember(c)
	if !ok {
		return
	}
	b, err := h.svc.Claim(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		middleware.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BountyHandler) Complete(c *gin.Context) {
	actor, ok := currentMember(c)
	if !ok {
		return
	}
	b, err := h.svc.Complete(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		middleware.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BountyHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		middleware.RespondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
