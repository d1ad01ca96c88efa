package challenges

import (
	"context"
	"math/rand"

	"golang.org/x/sync/singleflight"

	"github.com/yungbote/connective-drills/internal/clients/redis"
	"github.com/yungbote/connective-drills/internal/config"
	repos "github.com/yungbote/connective-drills/internal/data/repos/drills"
	"github.com/yungbote/connective-drills/internal/modules/connective"
	"github.com/yungbote/connective-drills/internal/observability"
	"github.com/yungbote/connective-drills/internal/platform/logger"
)

// JSONGenerator is the slice of the LLM client the use cases need.
type JSONGenerator interface {
	GenerateJSON(ctx context.Context, system string, user string, schemaName string, schema map[string]any) (map[string]any, error)
}

// TextGenerator is the plain-text completion the seed translation uses.
type TextGenerator interface {
	GenerateText(ctx context.Context, system string, user string) (string, error)
}

// SampleFunc matches connective.Sample.
type SampleFunc func(rng *rand.Rand, difficulty string, maxTries int) (connective.Spec, error)

type UsecasesDeps struct {
	Log *logger.Logger

	Challenges repos.ChallengeRepo
	Attempts   repos.AttemptRepo
	Cache      redis.ChallengeCache

	// AI is nil when LLM generation is disabled.
	AI JSONGenerator
	// Translator is nil unless seed translation is wired.
	Translator TextGenerator
	Metrics    *observability.Metrics

	Generation config.GenerationConfig
	LLM        config.LLMConfig

	// Optional overrides, defaulted by New.
	NewRand func() *rand.Rand
	Sample  SampleFunc
}

type Usecases struct {
	deps  UsecasesDeps
	loads *singleflight.Group
}

func New(deps UsecasesDeps) Usecases {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	deps.Log = deps.Log.With("service", "ChallengeUsecases")
	if deps.Cache == nil {
		deps.Cache = redis.NewNoopCache()
	}
	if deps.NewRand == nil {
		deps.NewRand = func() *rand.Rand { return connective.NewRand(0) }
	}
	if deps.Sample == nil {
		deps.Sample = connective.Sample
	}
	if deps.Generation.MaxTries <= 0 {
		deps.Generation.MaxTries = 80
	}
	if deps.Generation.MaxAnswerRunes <= 0 {
		deps.Generation.MaxAnswerRunes = 2000
	}
	if deps.LLM.MaxAttempts <= 0 {
		deps.LLM.MaxAttempts = 1
	}
	return Usecases{deps: deps, loads: &singleflight.Group{}}
}

func (u Usecases) WithLog(log *logger.Logger) Usecases {
	u.deps.Log = log
	return u
}
