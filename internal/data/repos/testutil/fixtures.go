package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/yungbote/connective-drills/internal/domain/drills"
)

// SeedChallenge inserts a minimal cause-to-result challenge created at at.
func SeedChallenge(tb testing.TB, ctx context.Context, tx *gorm.DB, difficulty string, at time.Time) *types.Challenge {
	tb.Helper()
	c := &types.Challenge{
		ID:                uuid.New(),
		Difficulty:        difficulty,
		Kind:              types.KindFreeformZH,
		Source:            types.SourceLocalBank,
		SeedZH:            "下雨了",
		ChallengeZH:       "用“因为…所以…”和“于是…”，只写两句。",
		ReferenceAnswerZH: "因为下雨了，所以我没去远处。我没去远处，于是我就在附近的小店慢慢逛",
		ChainID:           "zh_chain__cause_to_result__v1",
		Spec:              datatypes.JSON([]byte(`{"seed":"下雨了"}`)),
		CreatedAt:         at,
		UpdatedAt:         at,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed challenge: %v", err)
	}
	return c
}

func SeedAttempt(tb testing.TB, ctx context.Context, tx *gorm.DB, challengeID uuid.UUID, score float64, at time.Time) *types.Attempt {
	tb.Helper()
	a := &types.Attempt{
		ID:          uuid.New(),
		ChallengeID: challengeID,
		Answer:      "答案",
		Score:       score,
		Pass:        score >= 60,
		CreatedAt:   at,
	}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed attempt: %v", err)
	}
	return a
}
