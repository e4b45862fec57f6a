package service

import (
	"context"
	"sync"
	"time"
)

// CounterStore 固定窗口计数；返回本窗口内的累计次数和窗口剩余时间
type CounterStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

type counter struct {
	count     int64
	expiresAt time.Time
}

// MemoryCounterStore 单进程计数，过期条目由 Run 定期清理
type MemoryCounterStore struct {
	mu      sync.Mutex
	entries map[string]*counter
	now     func() time.Time
}

func NewMemoryCounterStore() *MemoryCounterStore {
	return &MemoryCounterStore{entries: make(map[string]*counter), now: time.Now}
}

func (s *MemoryCounterStore) Incr(_ context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	c, ok := s.entries[key]
	if !ok || !now.Before(c.expiresAt) {
		c = &counter{expiresAt: now.Add(window)}
		s.entries[key] = c
	}
	c.count++
	return c.count, c.expiresAt.Sub(now), nil
}

// Sweep 删除已过期的条目，返回删除数量
func (s *MemoryCounterStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := 0
	for k, c := range s.entries {
		if !now.Before(c.expiresAt) {
			delete(s.entries, k)
			n++
		}
	}
	return n
}

func (s *MemoryCounterStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *MemoryCounterStore) Run(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.Sweep()
		}
	}
}

type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter 每个 key 在 window 内最多 limit 次
type Limiter struct {
	store  CounterStore
	scope  string
	limit  int
	window time.Duration
}

func NewLimiter(store CounterStore, scope string, limit int, window time.Duration) *Limiter {
	return &Limiter{store: store, scope: scope, limit: limit, window: window}
}

func (l *Limiter) Scope() string { return l.scope }

func (l *Limiter) Allow(ctx context.Context, key string) (Decision, error) {
	n, ttl, err := l.store.Incr(ctx, l.scope+":"+key, l.window)
	if err != nil {
		return Decision{Allowed: true}, err
	}
	remaining := l.limit - int(n)
	if remaining < 0 {
		remaining = 0
	}
	d := Decision{Allowed: n <= int64(l.limit), Remaining: remaining}
	if !d.Allowed {
		d.RetryAfter = ttl
	}
	return d, nil
}
