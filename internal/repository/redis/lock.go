package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const LockKeyPrefix = "lock:"

type DistLock struct {
	RDB *redis.Client
	TTL time.Duration
}

var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
  return redis.call("del", KEYS[1])
else
  return 0
end`)

// Acquire 请求加分布式锁
func (l *DistLock) Acquire(ctx context.Context, name, token string) (bool, error) {
	ttl := l.TTL
	if ttl <= 0 {
		ttl = 5 * time.Second
	}
	return l.RDB.SetNX(ctx, LockKeyPrefix+name, token, ttl).Result()
}

// Release 用lua保证只释放自己持有的锁
func (l *DistLock) Release(ctx context.Context, name, token string) error {
	return releaseScript.Run(ctx, l.RDB, []string{LockKeyPrefix + name}, token).Err()
}
