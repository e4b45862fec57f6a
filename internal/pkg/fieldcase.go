package pkg

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var ErrEmptyBody = errors.New("empty request body")

// SnakeToCamel wallet_address -> walletAddress
func SnakeToCamel(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}
	parts := strings.Split(s, "_")
	var b strings.Builder
	b.Grow(len(s))
	first := true
	for _, p := range parts {
		if p == "" {
			continue
		}
		if first {
			b.WriteString(p)
			first = false
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// NormalizeKeys 递归把 snake_case 键改为 camelCase；两种写法同时出现时以 camelCase 为准
func NormalizeKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if !strings.Contains(k, "_") {
				out[k] = NormalizeKeys(val)
			}
		}
		for k, val := range t {
			if !strings.Contains(k, "_") {
				continue
			}
			ck := SnakeToCamel(k)
			if _, exists := out[ck]; !exists {
				out[ck] = NormalizeKeys(val)
			}
		}
		return out
	case []any:
		for i := range t {
			t[i] = NormalizeKeys(t[i])
		}
		return t
	default:
		return v
	}
}

// BindJSON 统一的请求体入口：先归一化字段命名，再解码并走 binding 校验
func BindJSON(c *gin.Context, obj any) error {
	if c.Request.Body == nil {
		return ErrEmptyBody
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return err
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))
	if len(bytes.TrimSpace(raw)) == 0 {
		return ErrEmptyBody
	}
	return DecodeNormalized(raw, obj)
}

// DecodeNormalized 供非 HTTP 场景（如测试、导入）复用同一套映射
func DecodeNormalized(raw []byte, obj any) error {
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return err
	}
	normalized, err := json.Marshal(NormalizeKeys(generic))
	if err != nil {
		return err
	}
	if err = json.Unmarshal(normalized, obj); err != nil {
		return err
	}
	if binding.Validator == nil {
		return nil
	}
	if err = RegisterValidators(); err != nil {
		return err
	}
	return binding.Validator.ValidateStruct(obj)
}
