package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const CounterPrefix = "ratelimit:"

// 首次计数时设置过期，返回 {当前计数, 剩余毫秒}
var incrScript = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if n == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
if ttl < 0 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
  ttl = tonumber(ARGV[1])
end
return {n, ttl}
`)

// CounterStore 固定窗口计数，多实例共享
type CounterStore struct {
	Client *redis.Client
}

func (s *CounterStore) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	res, err := incrScript.Run(ctx, s.Client, []string{CounterPrefix + key}, window.Milliseconds()).Int64Slice()
	if err != nil {
		return 0, 0, err
	}
	return res[0], time.Duration(res[1]) * time.Millisecond, nil
}
