package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache 定義快取操作介面
// 封裝 Redis 的字串與集合操作，測試時以 FakeCache 替換
// ttl <= 0 表示不設過期
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	// GetDel 讀取並刪除 key，單一指令完成
	GetDel(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	SAdd(ctx context.Context, key string, members ...interface{}) *redis.IntCmd
	SRem(ctx context.Context, key string, members ...interface{}) *redis.IntCmd
	SMembers(ctx context.Context, key string) *redis.StringSliceCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

type FakeCache struct {
	GetFn      func(ctx context.Context, key string) *redis.StringCmd
	GetDelFn   func(ctx context.Context, key string) *redis.StringCmd
	SetFn      func(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	DelFn      func(ctx context.Context, keys ...string) *redis.IntCmd
	SAddFn     func(ctx context.Context, key string, members ...any) *redis.IntCmd
	SRemFn     func(ctx context.Context, key string, members ...any) *redis.IntCmd
	SMembersFn func(ctx context.Context, key string) *redis.StringSliceCmd
	PingFn     func(ctx context.Context) *redis.StatusCmd
	CloseFn    func() error
}

func (f *FakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.GetFn != nil {
		return f.GetFn(ctx, key)
	}
	panic("unexpected Get")
}

func (f *FakeCache) GetDel(ctx context.Context, key string) *redis.StringCmd {
	if f.GetDelFn != nil {
		return f.GetDelFn(ctx, key)
	}
	panic("unexpected GetDel")
}

func (f *FakeCache) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.SetFn != nil {
		return f.SetFn(ctx, key, value, expiration)
	}
	panic("unexpected Set")
}

func (f *FakeCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	if f.DelFn != nil {
		return f.DelFn(ctx, keys...)
	}
	panic("unexpected Del")
}

func (f *FakeCache) SAdd(ctx context.Context, key string, members ...any) *redis.IntCmd {
	if f.SAddFn != nil {
		return f.SAddFn(ctx, key, members...)
	}
	panic("unexpected SAdd")
}

func (f *FakeCache) SRem(ctx context.Context, key string, members ...any) *redis.IntCmd {
	if f.SRemFn != nil {
		return f.SRemFn(ctx, key, members...)
	}
	panic("unexpected SRem")
}

func (f *FakeCache) SMembers(ctx context.Context, key string) *redis.StringSliceCmd {
	if f.SMembersFn != nil {
		return f.SMembersFn(ctx, key)
	}
	panic("unexpected SMembers")
}

func (f *FakeCache) Ping(ctx context.Context) *redis.StatusCmd {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	return redis.NewStatusResult("PONG", nil)
}

// Close 執行 Fake 設定或 no-op
func (f *FakeCache) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}
