package middleware

import (
	"errors"
	"net/http"

	"Club_Portal/internal/pkg"
	"Club_Portal/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type errResponse struct {
	status int
	tag    string
}

// errTable 业务错误 -> HTTP 状态码与错误标签
var errTable = []struct {
	err  error
	resp errResponse
}{
	{service.ErrWalletMissing, errResponse{http.StatusBadRequest, pkg.TagBadRequest}},
	{service.ErrWalletInvalid, errResponse{http.StatusBadRequest, pkg.TagInvalidWallet}},
	{service.ErrMemberNotFound, errResponse{http.StatusNotFound, pkg.TagNotFound}},
	{service.ErrAuthUnavailable, errResponse{http.StatusInternalServerError, pkg.TagAuthFailed}},
	{service.ErrSignatureRequired, errResponse{http.StatusBadRequest, pkg.TagBadRequest}},
	{service.ErrInvalidSignature, errResponse{http.StatusForbidden, pkg.TagInvalidSignature}},
	{service.ErrNonceExpired, errResponse{http.StatusForbidden, pkg.TagInvalidSignature}},
	{service.ErrTokenInvalid, errResponse{http.StatusUnauthorized, pkg.TagUnauthorized}},
	{service.ErrTokenRevoked, errResponse{http.StatusUnauthorized, pkg.TagUnauthorized}},
	{service.ErrAdminSecret, errResponse{http.StatusForbidden, pkg.TagForbidden}},
	{service.ErrInvalidRole, errResponse{http.StatusBadRequest, pkg.TagBadRequest}},
	{service.ErrInvalidInput, errResponse{http.StatusBadRequest, pkg.TagBadRequest}},
	{service.ErrRosterFull, errResponse{http.StatusForbidden, pkg.TagCapacityExceeded}},
	{service.ErrRosterBusy, errResponse{http.StatusConflict, pkg.TagConflict}},
	{service.ErrForbidden, errResponse{http.StatusForbidden, pkg.TagForbidden}},
	{service.ErrNotFound, errResponse{http.StatusNotFound, pkg.TagNotFound}},
	{service.ErrDuplicate, errResponse{http.StatusConflict, pkg.TagConflict}},
	{service.ErrStateConflict, errResponse{http.StatusConflict, pkg.TagConflict}},
	{service.ErrMailDisabled, errResponse{http.StatusServiceUnavailable, pkg.TagUnavailable}},
}

var friendly = map[error]string{
	service.ErrMemberNotFound:  "wallet is not registered as an active club member",
	service.ErrAuthUnavailable: "authentication failed, please try again later",
	service.ErrRosterFull:      "member roster is at capacity",
	service.ErrDuplicate:       "a record with the same key already exists",
	service.ErrNotFound:        "record not found",
}

// RespondError 未知错误记日志并返回通用 500，不泄露内部信息
func RespondError(c *gin.Context, log *zap.Logger, err error) {
	for _, e := range errTable {
		if !errors.Is(err, e.err) {
			continue
		}
		msg, ok := friendly[e.err]
		if !ok {
			msg = e.err.Error()
		}
		if e.resp.status >= http.StatusInternalServerError {
			log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		}
		pkg.Fail(c, e.resp.status, e.resp.tag, msg)
		return
	}
	log.Error("unhandled error", zap.String("path", c.FullPath()), zap.Error(err))
	pkg.Fail(c, http.StatusInternalServerError, pkg.TagInternal, "internal server error")
}

// BadRequest 请求体解析或校验失败
func BadRequest(c *gin.Context, err error) {
	if pkg.IsWalletError(err) {
		pkg.Fail(c, http.StatusBadRequest, pkg.TagInvalidWallet, service.ErrWalletInvalid.Error())
		return
	}
	msg := "invalid request body"
	if errors.Is(err, pkg.ErrEmptyBody) {
		msg = "request body is required"
	}
	pkg.Fail(c, http.StatusBadRequest, pkg.TagBadRequest, msg)
}
