package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrTokenNotFound    = errors.New("token not found")
	ErrRedisUnavailable = errors.New("redis unavailable")
	ErrTokenDeleted     = errors.New("token delete failed")
)

const MemberTokenPrefix = "login:member:token"

// TokenRepository 每个成员只保留一个有效 access token，登出即失效
type TokenRepository struct {
	Client *redis.Client
}

func (r *TokenRepository) key(memberID string) string {
	return fmt.Sprintf("%s:%s", MemberTokenPrefix, memberID)
}

func (r *TokenRepository) AddMemberToken(ctx context.Context, memberID, token string, ttl time.Duration) error {
	if err := r.Client.Set(ctx, r.key(memberID), token, ttl).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}

func (r *TokenRepository) GetMemberToken(ctx context.Context, memberID string) (string, error) {
	token, err := r.Client.Get(ctx, r.key(memberID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", ErrRedisUnavailable
	}
	return token, nil
}

func (r *TokenRepository) DeleteMemberToken(ctx context.Context, memberID string) error {
	if err := r.Client.Del(ctx, r.key(memberID)).Err(); err != nil {
		return ErrTokenDeleted
	}
	return nil
}
