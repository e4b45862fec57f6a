package handler

import (
	"net/http"

	"Club_Portal/internal/middleware"
	"Club_Portal/internal/pkg"
	"Club_Portal/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EventHandler struct {
	svc *service.EventService
	log *zap.Logger
}

func NewEventHandler(svc *service.EventService, log *zap.Logger) *EventHandler {
	return &EventHandler{svc: svc, log: log}
}

// List ?upcoming=true 只看未开始的活动
func (h *EventHandler) List(c *gin.Context) {
	page, size := pageParams(c)
	list, err := h.svc.List(c.Request.Context(), c.Query("upcoming") == "true", page, size)
	if err != nil {
		middleware.RespondError(c, h.log, err)
		return
	}
	listResponse(c, list, page, size)
}

func (h *EventHandler) Get(c *gin.Context) {
	e, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *EventHandler) Create(c *gin.Context) {
	actor, ok := currentMember(c)
	if !ok {
		return
	}
	var req service.EventInput
	if err := pkg.BindJSON(c, &req); err != nil {
		middleware.BadRequest(c, err)
		return
	}
	e, err := h.svc.Create(c.Request.Context(), actor, req)
	if err != nil {
		middleware.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *EventHandler) Update(c *gin.Context) {
	var req service.EventInput
	if err := pkg.BindJSON(c, &req); err != nil {
		middleware.BadRequest(c, err)
		return
	}
	e, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		middleware.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		middleware.RespondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
