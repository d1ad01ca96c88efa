package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	types "github.com/yungbote/connective-drills/internal/domain/drills"
	"github.com/yungbote/connective-drills/internal/platform/logger"
)

func TestCacheKey(t *testing.T) {
	id := uuid.MustParse("6f1c2a1e-6f0b-4d59-9d5e-3f0a1e2b7c11")
	if got := cacheKey(id); got != "drills:challenge:6f1c2a1e-6f0b-4d59-9d5e-3f0a1e2b7c11" {
		t.Fatalf("cacheKey = %q", got)
	}
}

func TestNoopCache(t *testing.T) {
	c := NewNoopCache()
	if err := c.Put(context.Background(), &types.Challenge{ID: uuid.New()}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, ok, err := c.Get(context.Background(), uuid.New()); ok || err != nil {
		t.Fatalf("noop cache should always miss: ok=%v err=%v", ok, err)
	}
}

func TestChallengeCache_RoundTrip(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("set TEST_REDIS_ADDR to run redis integration tests")
	}
	rdb := goredis.NewClient(&goredis.Options{Addr: addr})
	cache := NewChallengeCacheWithClient(rdb, time.Minute, logger.Nop())
	t.Cleanup(func() { _ = cache.Close() })

	ctx := context.Background()
	ch := &types.Challenge{ID: uuid.New(), Difficulty: "hsk3", SeedZH: "下雨了"}
	if err := cache.Put(ctx, ch); err != nil {
		t.Fatalf("Put: %v", err)
	}
	t.Cleanup(func() { _ = rdb.Del(context.Background(), cacheKey(ch.ID)).Err() })

	got, ok, err := cache.Get(ctx, ch.ID)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got.SeedZH != "下雨了" || got.Difficulty != "hsk3" {
		t.Fatalf("unexpected: %+v", got)
	}

	if _, ok, err := cache.Get(ctx, uuid.New()); ok || err != nil {
		t.Fatalf("expected miss: ok=%v err=%v", ok, err)
	}
}
