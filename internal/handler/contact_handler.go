package handler

import (
	"context"
	"net/http"
	"time"

	"Club_Portal/internal/middleware"
	"Club_Portal/internal/pkg"
	"Club_Portal/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ContactHandler struct {
	svc *service.ContactService
	log *zap.Logger
}

func NewContactHandler(svc *service.ContactService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{svc: svc, log: log}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req service.ContactInput
	if err := pkg.BindJSON(c, &req); err != nil {
		middleware.BadRequest(c, err)
		return
	}
	if err := h.svc.Submit(c.Request.Context(), req); err != nil {
		middleware.RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "message sent"})
}

// Health 依赖探活，ping 为 nil 时只返回进程存活；失败原因只写日志
func Health(ping func(ctx context.Context) error, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ping != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				log.Warn("health check failed", zap.Error(err))
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
