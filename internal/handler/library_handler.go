package handler

import (
	"net/http"

	"Club_Portal/internal/middleware"
	"Club_Portal/internal/pkg"
	"Club_Portal/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LibraryHandler /api/repositories 与 /api/resources
type LibraryHandler struct {
	svc *service.LibraryService
	log *zap.Logger
}

func NewLibraryHandler(svc *service.LibraryService, log *zap.Logger) *LibraryHandler {
	return &LibraryHandler{svc: svc, log: log}
}

func (h *LibraryHandler) ListRepositories(c *gin.Context) {
	page, size := pageParams(c)
	list, err := h.svc.ListRepositories(c.Request.Context(), c.Query("language"), page, size)
	if err != nil {
		middleware.RespondError(c, h.log, err)
		return
	}
	listResponse(c, list, page, size)
}

func (h *LibraryHandler) CreateRepository(c *gin.Context) {
	actor, ok := currentMember(c)
	if !ok {
		return
	}
	var req service.CodeRepoInput
	if err := pkg.BindJSON(c, &req); err != nil {
		middleware.BadRequest(c, err)
		return
	}
	r, err := h.svc.AddRepository(c.Request.Context(), actor, req)
	if err != nil {
		middleware.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (h *LibraryHandler) DeleteRepository(c *gin.Context) {
	if err := h.svc.DeleteRepository(c.Request.Context(), c.Param("id")); err != nil {
		middleware.RespondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *LibraryHandler) ListResources(c *gin.Context) {
	page, size := pageParams(c)
	list, err := h.svc.ListResources(c.Request.Context(), c.Query("category"), page, size)
	if err != nil {
		middleware.RespondError(c, h.log, err)
		return
	}
	listResponse(c, list, page, size)
}

func (h *LibraryHandler) CreateResource(c *gin.Context) {
	actor, ok := currentMember(c)
	if !ok {
		return
	}
	var req service.ResourceInput
	if err := pkg.BindJSON(c, &req); err != nil {
		middleware.BadRequest(c, err)
		return
	}
	r, err := h.svc.AddResource(c.Request.Context(), actor, req)
	if err != nil {
		middleware.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (h *LibraryHandler) DeleteResource(c *gin.Context) {
	if err := h.svc.DeleteResource(c.Request.Context(), c.Param("id")); err != nil {
		middleware.RespondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
