package app

import (
	"gorm.io/gorm"

	repos "github.com/yungbote/connective-drills/internal/data/repos/drills"
	"github.com/yungbote/connective-drills/internal/platform/logger"
)

type Repos struct {
	Challenges repos.ChallengeRepo
	Attempts   repos.AttemptRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Challenges: repos.NewChallengeRepo(db, log),
		Attempts:   repos.NewAttemptRepo(db, log),
	}
}
