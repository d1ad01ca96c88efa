package drills

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/connective-drills/internal/domain/drills"
	"github.com/yungbote/connective-drills/internal/pkg/dbctx"
	"github.com/yungbote/connective-drills/internal/platform/logger"
)

type AttemptRepo interface {
	Create(dbc dbctx.Context, a *types.Attempt) (*types.Attempt, error)
	ListByChallenge(dbc dbctx.Context, challengeID uuid.UUID, limit int) ([]*types.Attempt, error)
	BestScore(dbc dbctx.Context, challengeID uuid.UUID) (float64, bool, error)
}

type attemptRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAttemptRepo(db *gorm.DB, baseLog *logger.Logger) AttemptRepo {
	return &attemptRepo{db: db, log: baseLog.With("repo", "AttemptRepo")}
}

func (r *attemptRepo) Create(dbc dbctx.Context, a *types.Attempt) (*types.Attempt, error) {
	if a == nil {
		return nil, errors.New("attempt required")
	}
	if a.ChallengeID == uuid.Nil {
		return nil, errors.New("attempt challenge_id required")
	}
	if err := dbc.DB(r.db).Create(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

func (r *attemptRepo) ListByChallenge(dbc dbctx.Context, challengeID uuid.UUID, limit int) ([]*types.Attempt, error) {
	var out []*types.Attempt
	if challengeID == uuid.Nil {
		return out, nil
	}
	if err := dbc.DB(r.db).
		Where("challenge_id = ?", challengeID).
		Order("created_at DESC").
		Limit(clampLimit(limit)).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// BestScore reports the highest score recorded for a challenge; ok is false
// when there are no attempts yet.
func (r *attemptRepo) BestScore(dbc dbctx.Context, challengeID uuid.UUID) (float64, bool, error) {
	var row struct {
		Best  *float64
		Count int64
	}
	if err := dbc.DB(r.db).Model(&types.Attempt{}).
		Select("MAX(score) AS best, COUNT(*) AS count").
		Where("challenge_id = ?", challengeID).
		Scan(&row).Error; err != nil {
		return 0, false, err
	}
	if row.Count == 0 || row.Best == nil {
		return 0, false, nil
	}
	return *row.Best, true, nil
}
