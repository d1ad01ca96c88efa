package challenges

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	types "github.com/yungbote/connective-drills/internal/domain/drills"
	"github.com/yungbote/connective-drills/internal/modules/connective"
	"github.com/yungbote/connective-drills/internal/pkg/dbctx"
	"github.com/yungbote/connective-drills/internal/platform/apierr"
)

func parseChallengeID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, apierr.BadRequest("invalid_challenge_id", fmt.Sprintf("invalid challenge id %q", raw))
	}
	return id, nil
}

// Get loads a challenge from the cache, falling back to the store.
// Concurrent misses for the same id share one store read.
func (u Usecases) Get(ctx context.Context, rawID string) (*types.Challenge, error) {
	id, err := parseChallengeID(rawID)
	if err != nil {
		return nil, err
	}

	if c, ok, err := u.deps.Cache.Get(ctx, id); err != nil {
		u.deps.Metrics.IncCacheLookup("error")
		u.deps.Log.Warn("Challenge cache read failed", "challenge_id", id.String(), "error", err)
	} else if ok {
		u.deps.Metrics.IncCacheLookup("hit")
		return c, nil
	} else {
		u.deps.Metrics.IncCacheLookup("miss")
	}

	// Shared by every caller waiting on this id, so one caller's cancellation
	// must not fail the others.
	loadCtx := context.WithoutCancel(ctx)
	v, err, _ := u.loads.Do(id.String(), func() (any, error) {
		if u.deps.Challenges == nil {
			return nil, apierr.New(http.StatusInternalServerError, "internal", fmt.Errorf("challenge repo missing"))
		}
		row, err := u.deps.Challenges.GetByID(dbctx.Context{Ctx: loadCtx}, id)
		if err != nil {
			return nil, apierr.New(http.StatusInternalServerError, "internal", fmt.Errorf("load challenge: %w", err))
		}
		if row == nil {
			return nil, apierr.NotFound("challenge_not_found", "challenge not found")
		}
		if err := u.deps.Cache.Put(loadCtx, row); err != nil {
			u.deps.Log.Warn("Challenge cache write failed", "challenge_id", id.String(), "error", err)
		}
		return row, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*types.Challenge), nil
}

func specOf(c *types.Challenge) (connective.Spec, error) {
	spec, err := connective.ParseSpec(c.Spec)
	if err != nil {
		return connective.Spec{}, apierr.New(http.StatusInternalServerError, "internal", fmt.Errorf("decode stored spec: %w", err))
	}
	return spec, nil
}

type ChallengeList struct {
	Items []*types.Challenge
	Total int64
}

// ListByDifficulty returns recent challenges, newest first, with the total
// stored for that difficulty. An empty difficulty lists across all of them.
func (u Usecases) ListByDifficulty(ctx context.Context, difficulty string, limit int) (ChallengeList, error) {
	d := strings.ToLower(strings.TrimSpace(difficulty))
	if d != "" {
		var err error
		if d, err = u.normalizeDifficulty(d); err != nil {
			return ChallengeList{}, err
		}
	}
	dbc := dbctx.Context{Ctx: ctx}
	rows, err := u.deps.Challenges.ListByDifficulty(dbc, d, limit)
	if err != nil {
		return ChallengeList{}, apierr.New(http.StatusInternalServerError, "internal", fmt.Errorf("list challenges: %w", err))
	}
	total, err := u.deps.Challenges.CountByDifficulty(dbc, d)
	if err != nil {
		return ChallengeList{}, apierr.New(http.StatusInternalServerError, "internal", fmt.Errorf("count challenges: %w", err))
	}
	return ChallengeList{Items: rows, Total: total}, nil
}

type Connector struct {
	MarkersZH string `json:"markers_zh"`
	English   string `json:"english"`
	Label     string `json:"label"`
}

type HintOutput struct {
	ChallengeID string      `json:"challenge_id"`
	ChallengeZH string      `json:"challenge_zh"`
	Connectors  []Connector `json:"connectors"`
}

// Hint lists the two connectors the learner must use, step1 first.
func (u Usecases) Hint(ctx context.Context, rawID string) (HintOutput, error) {
	c, err := u.Get(ctx, rawID)
	if err != nil {
		return HintOutput{}, err
	}
	spec, err := specOf(c)
	if err != nil {
		return HintOutput{}, err
	}
	m1, m2 := spec.Labels()
	out := HintOutput{
		ChallengeID: c.ID.String(),
		ChallengeZH: connective.BuildCompactChallengeZH(spec),
	}
	for _, m := range []string{m1, m2} {
		out.Connectors = append(out.Connectors, Connector{
			MarkersZH: m,
			English:   connective.ConnectorEnglish(m),
			Label:     connective.ConnectorLabel(m),
		})
	}
	return out, nil
}
