package app

import (
	"github.com/yungbote/connective-drills/internal/config"
	"github.com/yungbote/connective-drills/internal/modules/challenges"
	"github.com/yungbote/connective-drills/internal/observability"
	"github.com/yungbote/connective-drills/internal/platform/logger"
)

func wireUsecases(cfg *config.Config, log *logger.Logger, r Repos, c Clients, m *observability.Metrics) challenges.Usecases {
	log.Info("Wiring use cases...")
	deps := challenges.UsecasesDeps{
		Log:        log,
		Challenges: r.Challenges,
		Attempts:   r.Attempts,
		Cache:      c.Cache,
		Metrics:    m,
		Generation: cfg.Generation,
		LLM:        cfg.LLM,
	}
	// Avoid a typed-nil interface when the LLM is off.
	if c.AI != nil {
		deps.AI = c.AI
		deps.Translator = c.AI
	}
	return challenges.New(deps)
}
