package app

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/connective-drills/internal/http/handlers"
	"github.com/yungbote/connective-drills/internal/modules/challenges"
	"github.com/yungbote/connective-drills/internal/platform/logger"
)

type Handlers struct {
	Challenge *handlers.ChallengeHandler
	Spec      *handlers.SpecHandler
	Health    *handlers.HealthHandler
}

func wireHandlers(log *logger.Logger, uc challenges.Usecases, db *gorm.DB, c Clients) Handlers {
	log.Info("Wiring handlers...")
	checks := map[string]handlers.Pinger{
		"db": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		"cache": c.Cache.Ping,
	}
	return Handlers{
		Challenge: handlers.NewChallengeHandler(uc),
		Spec:      handlers.NewSpecHandler(uc),
		Health:    handlers.NewHealthHandler(checks),
	}
}
