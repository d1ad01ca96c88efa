package challenges

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/datatypes"

	types "github.com/yungbote/connective-drills/internal/domain/drills"
	"github.com/yungbote/connective-drills/internal/modules/connective"
	"github.com/yungbote/connective-drills/internal/observability"
	"github.com/yungbote/connective-drills/internal/pkg/dbctx"
	"github.com/yungbote/connective-drills/internal/platform/apierr"
)

const (
	itemSchemaName = "connective_item_v2"

	translationUnavailable = "English translation unavailable"
	maxDifficultyLen       = 16
)

type GenerateInput struct {
	Difficulty string
}

// Generate samples a spec, renders (or asks the LLM for) an item, and
// persists the resulting challenge.
func (u Usecases) Generate(ctx context.Context, in GenerateInput) (*types.Challenge, error) {
	ctx, span := observability.Tracer().Start(ctx, "challenges.Generate")
	defer span.End()

	difficulty, err := u.normalizeDifficulty(in.Difficulty)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("drills.difficulty", difficulty))

	spec, err := u.sample(difficulty)
	if err != nil {
		span.SetStatus(codes.Error, "sampling exhausted")
		return nil, err
	}
	span.SetAttributes(
		attribute.String("drills.chain_id", spec.ChainID),
		attribute.String("drills.scene_id", spec.SceneID),
	)

	item := deterministicItem(spec)
	source := types.SourceLocalBank
	if u.deps.AI != nil {
		if cand, ok := u.generateCandidate(ctx, spec); ok {
			item = cand
			source = types.SourceGenerated
		}
	}
	span.SetAttributes(attribute.String("drills.source", source))

	specJSON, err := json.Marshal(spec)
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "internal", fmt.Errorf("encode spec: %w", err))
	}

	row := &types.Challenge{
		Difficulty:        difficulty,
		Kind:              types.KindFreeformZH,
		Source:            source,
		SeedZH:            item.SeedZH,
		SeedEN:            u.translateSeed(ctx, item.SeedZH),
		ChallengeZH:       item.ChallengeZH,
		ChallengeEN:       connective.BuildChallengeEN(spec),
		SummaryEN:         connective.BuildSummaryEN(spec),
		ReferenceAnswerZH: item.ReferenceAnswerZH,
		ChainID:           spec.ChainID,
		SceneID:           spec.SceneID,
		Step1PatternID:    spec.Step1.PatternID,
		Step2PatternID:    spec.Step2.PatternID,
		Spec:              datatypes.JSON(specJSON),
	}
	if u.deps.Challenges == nil {
		return nil, apierr.New(http.StatusInternalServerError, "internal", fmt.Errorf("challenge repo missing"))
	}
	if _, err := u.deps.Challenges.Create(dbctx.Context{Ctx: ctx}, row); err != nil {
		span.SetStatus(codes.Error, "persist failed")
		return nil, apierr.New(http.StatusInternalServerError, "internal", fmt.Errorf("persist challenge: %w", err))
	}
	if err := u.deps.Cache.Put(ctx, row); err != nil {
		u.deps.Log.Warn("Challenge cache write failed", "challenge_id", row.ID.String(), "error", err)
	}

	u.deps.Metrics.IncGeneratedItem(source)
	u.deps.Log.Info("Challenge generated",
		"challenge_id", row.ID.String(),
		"difficulty", difficulty,
		"chain_id", spec.ChainID,
		"scene_id", spec.SceneID,
		"source", source,
	)
	return row, nil
}

func (u Usecases) normalizeDifficulty(raw string) (string, error) {
	d := strings.ToLower(strings.TrimSpace(raw))
	if d == "" {
		d = strings.ToLower(strings.TrimSpace(u.deps.Generation.FallbackDifficulty))
	}
	if len(d) > maxDifficultyLen {
		return "", apierr.BadRequest("invalid_difficulty", "difficulty is too long")
	}
	for _, r := range d {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-') {
			return "", apierr.BadRequest("invalid_difficulty", fmt.Sprintf("unsupported difficulty %q", raw))
		}
	}
	return d, nil
}

// sample retries once at the fallback difficulty before giving up.
func (u Usecases) sample(difficulty string) (connective.Spec, error) {
	maxTries := u.deps.Generation.MaxTries
	spec, err := u.deps.Sample(u.deps.NewRand(), difficulty, maxTries)
	u.deps.Metrics.IncSampling(err == nil)
	if err == nil {
		return spec, nil
	}
	if !errors.Is(err, connective.ErrSamplingExhausted) {
		return connective.Spec{}, apierr.New(http.StatusInternalServerError, "internal", err)
	}

	fallback := strings.ToLower(strings.TrimSpace(u.deps.Generation.FallbackDifficulty))
	if fallback != "" && fallback != difficulty {
		u.deps.Log.Warn("Sampling exhausted, retrying at fallback difficulty",
			"difficulty", difficulty,
			"fallback", fallback,
			"max_tries", maxTries,
		)
		spec, err = u.deps.Sample(u.deps.NewRand(), fallback, maxTries)
		u.deps.Metrics.IncSampling(err == nil)
		if err == nil {
			return spec, nil
		}
	}
	return connective.Spec{}, apierr.Unavailable("sampling_exhausted", err)
}

func deterministicItem(spec connective.Spec) connective.GeneratedItem {
	return connective.GeneratedItem{
		SeedZH:            spec.Seed,
		ChallengeZH:       connective.BuildCompactChallengeZH(spec),
		ReferenceAnswerZH: connective.BuildExpectedReferenceAnswer(spec),
	}
}

// generateCandidate asks the LLM for an item and keeps the first one that
// passes the strict validator.
func (u Usecases) generateCandidate(ctx context.Context, spec connective.Spec) (connective.GeneratedItem, bool) {
	user, err := connective.BuildUserMessage(spec)
	if err != nil {
		u.deps.Log.Warn("Building generator message failed", "error", err)
		return connective.GeneratedItem{}, false
	}
	system := strings.TrimSpace(u.deps.LLM.SystemPrompt)
	if system == "" {
		system = connective.SystemPrompt
	}

	for attempt := 1; attempt <= u.deps.LLM.MaxAttempts; attempt++ {
		start := time.Now()
		obj, err := u.deps.AI.GenerateJSON(ctx, system, user, itemSchemaName, schemaGeneratedItem())
		if err != nil {
			u.deps.Metrics.ObserveLLMRequest("error", time.Since(start))
			u.deps.Log.Warn("LLM item generation failed", "attempt", attempt, "chain_id", spec.ChainID, "error", err)
			if ctx.Err() != nil {
				return connective.GeneratedItem{}, false
			}
			continue
		}
		u.deps.Metrics.ObserveLLMRequest("ok", time.Since(start))

		item := coerceGeneratedItem(obj)
		if err := connective.ValidateGeneratedItem(spec, item); err != nil {
			u.deps.Metrics.IncSchemaViolation()
			u.deps.Log.Warn("LLM item rejected", "attempt", attempt, "chain_id", spec.ChainID, "scene_id", spec.SceneID, "error", err)
			continue
		}
		if item.ChallengeZH == "" {
			item.ChallengeZH = connective.BuildCompactChallengeZH(spec)
		}
		return item, true
	}
	return connective.GeneratedItem{}, false
}

func schemaGeneratedItem() map[string]any {
	str := map[string]any{"type": "string"}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"seed_zh":             str,
			"challenge_zh":        str,
			"reference_answer_zh": str,
			"meta": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"chain_id":         str,
					"scene_id":         str,
					"step1_pattern_id": str,
					"step2_pattern_id": str,
				},
				"required":             []any{"chain_id", "scene_id", "step1_pattern_id", "step2_pattern_id"},
				"additionalProperties": false,
			},
		},
		"required":             []any{"seed_zh", "challenge_zh", "reference_answer_zh", "meta"},
		"additionalProperties": false,
	}
}

func coerceGeneratedItem(obj map[string]any) connective.GeneratedItem {
	item := connective.GeneratedItem{
		SeedZH:            anyString(obj["seed_zh"]),
		ChallengeZH:       strings.TrimSpace(anyString(obj["challenge_zh"])),
		ReferenceAnswerZH: anyString(obj["reference_answer_zh"]),
	}
	if meta, ok := obj["meta"]; ok && meta != nil {
		if raw, err := json.Marshal(meta); err == nil {
			item.Meta = raw
		}
	}
	return item
}

// translateSeed is best effort; it never fails the generation.
func (u Usecases) translateSeed(ctx context.Context, seedZH string) string {
	if u.deps.Translator == nil || !u.deps.LLM.Translate || strings.TrimSpace(seedZH) == "" {
		return ""
	}
	system := "Translate the Chinese sentence into one short natural English sentence. Reply with the English sentence only."
	out, err := u.deps.Translator.GenerateText(ctx, system, seedZH)
	if err != nil {
		u.deps.Log.Warn("Seed translation failed", "error", err)
		return translationUnavailable
	}
	en := strings.TrimSpace(out)
	if !looksEnglish(en) {
		return translationUnavailable
	}
	return en
}

// looksEnglish accepts non-empty text with Latin letters and no Han runes.
func looksEnglish(s string) bool {
	latin := false
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return false
		}
		if r <= unicode.MaxASCII && unicode.IsLetter(r) {
			latin = true
		}
	}
	return latin
}

func anyString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
