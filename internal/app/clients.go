package app

import (
	"fmt"

	"github.com/yungbote/connective-drills/internal/clients/redis"
	"github.com/yungbote/connective-drills/internal/config"
	"github.com/yungbote/connective-drills/internal/platform/logger"
	"github.com/yungbote/connective-drills/internal/platform/openai"
)

type Clients struct {
	Cache redis.ChallengeCache
	// AI is nil when LLM generation is disabled.
	AI openai.Client
}

func wireClients(cfg *config.Config, log *logger.Logger) (Clients, error) {
	log.Info("Wiring clients...")
	out := Clients{Cache: redis.NewNoopCache()}

	if cfg.Redis.Enabled {
		cache, err := redis.NewChallengeCache(cfg.Redis, log)
		if err != nil {
			// The store is authoritative; run uncached rather than fail.
			log.Warn("Redis unavailable, challenge cache disabled", "addr", cfg.Redis.Addr, "error", err)
		} else {
			out.Cache = cache
		}
	}

	if cfg.LLM.Enabled {
		ai, err := openai.NewClient(cfg.LLM, log)
		if err != nil {
			return Clients{}, fmt.Errorf("init openai client: %w", err)
		}
		out.AI = ai
	}
	return out, nil
}
