package service

import (
	"errors"

	"Club_Portal/internal/repository/sqldb"
)

var (
	ErrWalletMissing   = errors.New("wallet address is required")
	ErrWalletInvalid   = errors.New("invalid wallet address")
	ErrMemberNotFound  = errors.New("member not found or not registered")
	ErrAuthUnavailable = errors.New("authentication failed")

	ErrSignatureRequired = errors.New("wallet signature is required")
	ErrInvalidSignature  = errors.New("invalid wallet signature")
	ErrNonceExpired      = errors.New("login challenge expired, request a new nonce")
	ErrTokenInvalid      = errors.New("invalid or expired token")
	ErrTokenRevoked      = errors.New("session has been revoked")

	ErrAdminSecret  = errors.New("invalid admin secret")
	ErrInvalidRole  = errors.New("unknown role")
	ErrRosterBusy   = errors.New("another registration is in progress, retry")
	ErrForbidden    = errors.New("not allowed to perform this action")
	ErrInvalidInput = errors.New("invalid input")

	ErrMailDisabled = errors.New("contact mail is not configured")
)

// 存储层错误直接透出，handler 统一映射
var (
	ErrNotFound      = sqldb.ErrNotFound
	ErrDuplicate     = sqldb.ErrDuplicate
	ErrRosterFull    = sqldb.ErrRosterFull
	ErrStateConflict = sqldb.ErrStateConflict
)
