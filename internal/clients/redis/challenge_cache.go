package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/connective-drills/internal/config"
	types "github.com/yungbote/connective-drills/internal/domain/drills"
	"github.com/yungbote/connective-drills/internal/platform/logger"
)

const keyPrefix = "drills:challenge:"

// ChallengeCache is a read-through cache in front of the challenge store.
// Challenges are immutable, so entries are only ever written once.
type ChallengeCache interface {
	Get(ctx context.Context, id uuid.UUID) (*types.Challenge, bool, error)
	Put(ctx context.Context, c *types.Challenge) error
	Ping(ctx context.Context) error
	Close() error
}

type challengeCache struct {
	log *logger.Logger
	rdb goredis.UniversalClient
	ttl time.Duration
}

func NewChallengeCache(cfg config.RedisConfig, log *logger.Logger) (ChallengeCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, fmt.Errorf("missing redis addr")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return NewChallengeCacheWithClient(rdb, cfg.TTL, log), nil
}

// NewChallengeCacheWithClient wraps an existing client.
func NewChallengeCacheWithClient(rdb goredis.UniversalClient, ttl time.Duration, log *logger.Logger) ChallengeCache {
	return &challengeCache{
		log: log.With("service", "RedisChallengeCache"),
		rdb: rdb,
		ttl: ttl,
	}
}

func cacheKey(id uuid.UUID) string { return keyPrefix + id.String() }

func (c *challengeCache) Get(ctx context.Context, id uuid.UUID) (*types.Challenge, bool, error) {
	raw, err := c.rdb.Get(ctx, cacheKey(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var out types.Challenge
	if err := json.Unmarshal(raw, &out); err != nil {
		// Drop entries written by an incompatible version.
		c.log.Warn("Dropping undecodable cache entry", "challenge_id", id.String(), "error", err)
		_ = c.rdb.Del(ctx, cacheKey(id)).Err()
		return nil, false, nil
	}
	return &out, true, nil
}

func (c *challengeCache) Put(ctx context.Context, ch *types.Challenge) error {
	if ch == nil || ch.ID == uuid.Nil {
		return fmt.Errorf("challenge with id required")
	}
	raw, err := json.Marshal(ch)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, cacheKey(ch.ID), raw, c.ttl).Err()
}

func (c *challengeCache) Ping(ctx context.Context) error { return c.rdb.Ping(ctx).Err() }

func (c *challengeCache) Close() error { return c.rdb.Close() }

type noopCache struct{}

// NewNoopCache is used when redis is disabled.
func NewNoopCache() ChallengeCache { return noopCache{} }

func (noopCache) Get(context.Context, uuid.UUID) (*types.Challenge, bool, error) {
	return nil, false, nil
}
func (noopCache) Put(context.Context, *types.Challenge) error { return nil }
func (noopCache) Ping(context.Context) error                  { return nil }
func (noopCache) Close() error                                { return nil }
