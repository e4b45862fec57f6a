package pkg

import (
	"github.com/gin-gonic/gin"
)

// 错误标签，前端按 error 字段做分支
const (
	TagBadRequest       = "bad_request"
	TagInvalidWallet    = "invalid_wallet"
	TagUnauthorized     = "unauthorized"
	TagForbidden        = "forbidden"
	TagNotFound         = "not_found"
	TagConflict         = "conflict"
	TagCapacityExceeded = "capacity_exceeded"
	TagInvalidSignature = "invalid_signature"
	TagTooManyRequests  = "too_many_requests"
	TagAuthFailed       = "authentication_failed"
	TagInternal         = "internal_error"
)

type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Fail 写出错误响应并中断后续 handler
func Fail(c *gin.Context, status int, tag, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Error: tag, Message: message})
}

const TagUnavailable = "service_unavailable"
