package challenges

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"

	types "github.com/yungbote/connective-drills/internal/domain/drills"
	"github.com/yungbote/connective-drills/internal/modules/connective"
	"github.com/yungbote/connective-drills/internal/observability"
	"github.com/yungbote/connective-drills/internal/pkg/dbctx"
	"github.com/yungbote/connective-drills/internal/platform/apierr"
)

type SubmitAttemptInput struct {
	ChallengeID string
	Answer      string
}

type SubmitAttemptOutput struct {
	Status      string  `json:"status"` // pass|fail
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
	ChallengeID string  `json:"challenge_id"`
	AttemptID   string  `json:"attempt_id"`
	BestScore   float64 `json:"best_score"`
}

func (u Usecases) SubmitAttempt(ctx context.Context, in SubmitAttemptInput) (SubmitAttemptOutput, error) {
	ctx, span := observability.Tracer().Start(ctx, "challenges.SubmitAttempt")
	defer span.End()

	if strings.TrimSpace(in.Answer) == "" {
		return SubmitAttemptOutput{}, apierr.BadRequest("missing_answer", "answer is required")
	}
	if n := utf8.RuneCountInString(in.Answer); n > u.deps.Generation.MaxAnswerRunes {
		return SubmitAttemptOutput{}, apierr.BadRequest("answer_too_long",
			fmt.Sprintf("answer has %d characters, max %d", n, u.deps.Generation.MaxAnswerRunes))
	}

	c, err := u.Get(ctx, in.ChallengeID)
	if err != nil {
		return SubmitAttemptOutput{}, err
	}
	spec, err := specOf(c)
	if err != nil {
		return SubmitAttemptOutput{}, err
	}

	res := connective.Evaluate(spec, in.Answer)
	span.SetAttributes(
		attribute.String("drills.challenge_id", c.ID.String()),
		attribute.Float64("drills.score", res.Score),
		attribute.Bool("drills.pass", res.Pass),
	)

	if u.deps.Attempts == nil {
		return SubmitAttemptOutput{}, apierr.New(http.StatusInternalServerError, "internal", fmt.Errorf("attempt repo missing"))
	}
	row, err := u.deps.Attempts.Create(dbctx.Context{Ctx: ctx}, &types.Attempt{
		ChallengeID: c.ID,
		Answer:      in.Answer,
		Score:       res.Score,
		Pass:        res.Pass,
		Explanation: res.Explanation,
	})
	if err != nil {
		return SubmitAttemptOutput{}, apierr.New(http.StatusInternalServerError, "internal", fmt.Errorf("persist attempt: %w", err))
	}

	best := res.Score
	if b, ok, err := u.deps.Attempts.BestScore(dbctx.Context{Ctx: ctx}, c.ID); err != nil {
		u.deps.Log.Warn("Best score lookup failed", "challenge_id", c.ID.String(), "error", err)
	} else if ok && b > best {
		best = b
	}

	u.deps.Metrics.ObserveAttempt(res.Score, res.Pass)
	u.deps.Log.Info("Attempt scored",
		"challenge_id", c.ID.String(),
		"attempt_id", row.ID.String(),
		"score", res.Score,
		"pass", res.Pass,
		"answer", in.Answer,
	)

	status := "fail"
	if res.Pass {
		status = "pass"
	}
	return SubmitAttemptOutput{
		Status:      status,
		Score:       res.Score,
		Explanation: res.Explanation,
		ChallengeID: c.ID.String(),
		AttemptID:   row.ID.String(),
		BestScore:   best,
	}, nil
}

// ListAttempts returns a challenge's attempts, newest first.
func (u Usecases) ListAttempts(ctx context.Context, rawID string, limit int) ([]*types.Attempt, error) {
	c, err := u.Get(ctx, rawID)
	if err != nil {
		return nil, err
	}
	rows, err := u.deps.Attempts.ListByChallenge(dbctx.Context{Ctx: ctx}, c.ID, limit)
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "internal", fmt.Errorf("list attempts: %w", err))
	}
	return rows, nil
}
