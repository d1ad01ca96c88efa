package connective

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// ErrSamplingExhausted is returned when no compatible combination was found
// within the retry budget. Callers may retry with a larger budget or another
// difficulty.
var ErrSamplingExhausted = errors.New("sampling exhausted")

// DefaultDifficultyLevel applies when a difficulty string cannot be parsed.
const DefaultDifficultyLevel = 2

var level1Schemas = map[string]bool{
	"reason_outcome_followup":    true,
	"condition_outcome_followup": true,
	"time_event_outcome":         true,
	"fact1_fact2_inference":      true,
	"action_goal_effect":         true,
}

const level2ExcludedSchema = "condition_expected_surprise"

var (
	level3PlusTokens = []string{
		"预算", "关键", "缓存", "样品", "实验", "汇报", "沟通", "效率", "截止", "省电模式", "热点",
		"发车时间", "提纲", "数据", "分析", "资料", "被迫", "偏偏", "狼狈", "越来越熟练",
	}
	level2PlusTokens = []string{
		"整理", "路线", "静音", "消息提醒", "待办", "拖到明天", "几乎没有休息时间", "后面的安排",
		"干脆", "省了不少时间", "只好",
	}
)

// NewRand returns a seeded source. A zero seed picks a time-based one.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// TargetLevel maps an "hsk<N>" difficulty to a level in 1..3.
// 0-2 map to 1, 3-4 to 2, anything higher to 3.
func TargetLevel(difficulty string) int {
	norm := strings.ToLower(strings.TrimSpace(difficulty))
	rest, ok := strings.CutPrefix(norm, "hsk")
	if !ok {
		return DefaultDifficultyLevel
	}
	n, err := strconv.ParseUint(rest, 10, 8)
	if err != nil {
		return DefaultDifficultyLevel
	}
	switch {
	case n <= 2:
		return 1
	case n <= 4:
		return 2
	default:
		return 3
	}
}

func chainAllowed(c ChainDef, level int) bool {
	switch {
	case level <= 1:
		return level1Schemas[c.SceneSchema]
	case level == 2:
		return c.SceneSchema != level2ExcludedSchema
	default:
		return true
	}
}

func sceneAllowed(s SceneDef, level int) bool {
	c1 := utf8.RuneCountInString(s.P1)
	c2 := utf8.RuneCountInString(s.P2)
	c3 := utf8.RuneCountInString(s.P3)
	total := c1 + c2 + c3
	joined := s.P1 + s.P2 + s.P3

	switch {
	case level <= 1:
		if c1 > 12 || c2 > 12 || c3 > 12 || total > 32 {
			return false
		}
		return !containsAny(joined, level3PlusTokens) && !containsAny(joined, level2PlusTokens)
	case level == 2:
		if c1 > 16 || c2 > 16 || c3 > 16 || total > 44 {
			return false
		}
		return !containsAny(joined, level3PlusTokens)
	default:
		return true
	}
}

func filterLevel(in []PatternDef, level int) []PatternDef {
	out := make([]PatternDef, 0, len(in))
	for _, p := range in {
		if p.Level <= level {
			out = append(out, p)
		}
	}
	return out
}

// containsAny ignores empty tokens.
func containsAny(text string, tokens []string) bool {
	for _, t := range tokens {
		if t != "" && strings.Contains(text, t) {
			return true
		}
	}
	return false
}

// Sample draws a (chain, pattern, pattern, scene) combination compatible
// with difficulty, retrying up to maxTries times. rng must not be shared
// across goroutines.
func Sample(rng *rand.Rand, difficulty string, maxTries int) (Spec, error) {
	if rng == nil {
		rng = NewRand(0)
	}
	level := TargetLevel(difficulty)
	chains := Chains()
	if len(chains) == 0 {
		return Spec{}, fmt.Errorf("%w: no chains configured", ErrSamplingExhausted)
	}

	for i := 0; i < maxTries; i++ {
		chain := chains[rng.Intn(len(chains))]
		if !chainAllowed(chain, level) {
			continue
		}

		pool1 := filterLevel(PatternsFor(chain.Step1), level)
		pool2 := filterLevel(PatternsFor(chain.Step2), level)
		if len(pool1) == 0 || len(pool2) == 0 {
			continue
		}
		p1 := pool1[rng.Intn(len(pool1))]
		p2 := pool2[rng.Intn(len(pool2))]

		scenes := ScenesFor(chain.SceneSchema)
		if len(scenes) == 0 {
			continue
		}
		scene := scenes[rng.Intn(len(scenes))]
		if !sceneAllowed(scene, level) {
			continue
		}

		seed := scene.P1
		if containsAny(seed, p1.SeedBanned) || containsAny(seed, p2.SeedBanned) {
			continue
		}

		return NewSpec(chain, p1, p2, scene), nil
	}

	return Spec{}, fmt.Errorf("%w: difficulty=%q tries=%d", ErrSamplingExhausted, difficulty, maxTries)
}
