package handler

import (
	"net/http"

	"Club_Portal/internal/middleware"
	"Club_Portal/internal/pkg"
	"Club_Portal/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProjectHandler struct {
	svc *service.ProjectService
	log *zap.Logger
}

func NewProjectHandler(svc *service.ProjectService, log *zap.Logger) *ProjectHandler {
	return &ProjectHandler{svc: svc, log: log}
}

func (h *ProjectHandler) List(c *gin.Context) {
	page, size := pageParams(c)
	list, err := h.svc.List(c.Request.Context(), c.Query("status"), page, size)
	if err != nil {
		middleware.RespondError(c, h.log, err)
		return
	}
	listResponse(c, list, page, size)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	actor, ok := currentMember(c)
	if !ok {
		return
	}
	var req service.ProjectInput
	if err := pkg.BindJSON(c, &req); err != nil {
		middleware.BadRequest(c, err)
		return
	}
	p, err := h.svc.Create(c.Request.Context(), actor, req)
	if err != nil {
		middleware.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	actor, ok := currentMember(c)
	if !ok {
		return
	}
	var req service.ProjectPatch
	if err := pkg.BindJSON(c, &req); err != nil {
		middleware.BadRequest(c, err)
		return
	}
	p, err := h.svc.Update(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		middleware.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	actor, ok := currentMember(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		middleware.RespondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
