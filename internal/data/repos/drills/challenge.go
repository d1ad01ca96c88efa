package drills

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/connective-drills/internal/domain/drills"
	"github.com/yungbote/connective-drills/internal/pkg/dbctx"
	"github.com/yungbote/connective-drills/internal/platform/logger"
)

type ChallengeRepo interface {
	Create(dbc dbctx.Context, c *types.Challenge) (*types.Challenge, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Challenge, error)
	ListByDifficulty(dbc dbctx.Context, difficulty string, limit int) ([]*types.Challenge, error)
	CountByDifficulty(dbc dbctx.Context, difficulty string) (int64, error)
}

type challengeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewChallengeRepo(db *gorm.DB, baseLog *logger.Logger) ChallengeRepo {
	return &challengeRepo{db: db, log: baseLog.With("repo", "ChallengeRepo")}
}

func (r *challengeRepo) Create(dbc dbctx.Context, c *types.Challenge) (*types.Challenge, error) {
	if c == nil {
		return nil, errors.New("challenge required")
	}
	if err := dbc.DB(r.db).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// GetByID returns (nil, nil) when the challenge does not exist.
func (r *challengeRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Challenge, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var out types.Challenge
	if err := dbc.DB(r.db).First(&out, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

// ListByDifficulty returns the newest challenges first. An empty difficulty
// lists across all difficulties.
func (r *challengeRepo) ListByDifficulty(dbc dbctx.Context, difficulty string, limit int) ([]*types.Challenge, error) {
	q := dbc.DB(r.db).Order("created_at DESC").Limit(clampLimit(limit))
	if d := strings.TrimSpace(difficulty); d != "" {
		q = q.Where("difficulty = ?", d)
	}
	var out []*types.Challenge
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *challengeRepo) CountByDifficulty(dbc dbctx.Context, difficulty string) (int64, error) {
	var n int64
	q := dbc.DB(r.db).Model(&types.Challenge{})
	if d := strings.TrimSpace(difficulty); d != "" {
		q = q.Where("difficulty = ?", d)
	}
	if err := q.Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

func clampLimit(n int) int {
	switch {
	case n <= 0:
		return defaultListLimit
	case n > maxListLimit:
		return maxListLimit
	default:
		return n
	}
}
