package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultNonceTTL = 5 * time.Minute
	NoncePrefix     = "auth:nonce"
)

var (
	ErrNonceNotFound   = errors.New("nonce not found or expired")
	ErrNonceSaveFailed = errors.New("nonce save failed")
)

// NonceRepository 登录挑战，一次性使用
type NonceRepository struct {
	Client *redis.Client
	TTL    time.Duration
}

func (r *NonceRepository) key(wallet string) string {
	return fmt.Sprintf("%s:%s", NoncePrefix, wallet)
}

func (r *NonceRepository) ttl() time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return DefaultNonceTTL
}

// SaveNonce 覆盖写，同一钱包只保留最近一次挑战
func (r *NonceRepository) SaveNonce(ctx context.Context, wallet, nonce string) error {
	if err := r.Client.Set(ctx, r.key(wallet), nonce, r.ttl()).Err(); err != nil {
		return ErrNonceSaveFailed
	}
	return nil
}

// ConsumeNonce 取出并删除，防重放
func (r *NonceRepository) ConsumeNonce(ctx context.Context, wallet string) (string, error) {
	val, err := r.Client.GetDel(ctx, r.key(wallet)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNonceNotFound
	}
	if err != nil {
		return "", ErrRedisUnavailable
	}
	return val, nil
}
