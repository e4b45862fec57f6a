package pkg

import (
	"errors"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators 注册自定义校验规则：wallet（Solana 地址）
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("unexpected validator engine")
			return
		}
		registerErr = v.RegisterValidation("wallet", func(fl validator.FieldLevel) bool {
			return ValidateWallet(NormalizeWallet(fl.Field().String())) == nil
		})
	})
	return registerErr
}

// IsWalletError 校验失败是否由 wallet 规则引起
func IsWalletError(err error) bool {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return false
	}
	for _, fe := range ve {
		if fe.Tag() == "wallet" {
			return true
		}
	}
	return false
}
