package connective

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()

	spec := rainSpec(t)
	cases := []struct {
		name        string
		answer      string
		pass        bool
		score       float64
		explanation string
	}{
		{
			name:        "empty",
			answer:      "   ",
			score:       0,
			explanation: "答案为空。请按要求只写两句。",
		},
		{
			name:        "reference",
			answer:      rainReference,
			pass:        true,
			score:       100,
			explanation: "结构正确：两句都满足连接词模式，并围绕种子短语展开。",
		},
		{
			name:        "free wording around the seed",
			answer:      "因为下雨了，所以我在家休息。我在家休息，于是看了一部电影。",
			pass:        true,
			score:       100,
			explanation: "结构正确：两句都满足连接词模式，并围绕种子短语展开。",
		},
		{
			name:        "seed missing",
			answer:      "因为天气不好，所以我没去远处。我没去远处，于是我就在附近的小店慢慢逛",
			pass:        true,
			score:       85,
			explanation: "内容未围绕种子短语。",
		},
		{
			name:        "single sentence",
			answer:      "因为下雨了，所以我没去远处",
			pass:        false,
			score:       27,
			explanation: "格式错误：需要正好两句（用句号分隔）；第2句不符合要求：缺少强标记：'于是'；第2句混入了第1步连接标记。",
		},
		{
			name:        "both sentences without connectors",
			answer:      "下雨了。我没去远处。",
			pass:        false,
			score:       50,
			explanation: "第1句不符合要求：缺少强标记：'因为'；第2句不符合要求：缺少强标记：'于是'。",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Evaluate(spec, tc.answer)
			assert.Equal(t, tc.pass, got.Pass)
			assert.InDelta(t, tc.score, got.Score, 1e-9)
			assert.Equal(t, tc.explanation, got.Explanation)
		})
	}
}

func TestEvaluate_MarkerBleedCostsPoints(t *testing.T) {
	t.Parallel()

	spec := rainSpec(t)
	clean := Evaluate(spec, "因为下雨了，所以我没去远处，就很开心。我没去远处，于是我就在附近的小店慢慢逛")
	bled := Evaluate(spec, "因为下雨了，所以我没去远处，于是很开心。我没去远处，于是我就在附近的小店慢慢逛")

	require.True(t, clean.Pass)
	assert.Less(t, bled.Score, clean.Score)
	assert.InDelta(t, clean.Score-8, bled.Score, 1e-9)
	assert.Contains(t, bled.Explanation, "第1句混入了第2步连接标记")
}

func TestEvaluate_ScoreIsClamped(t *testing.T) {
	t.Parallel()

	// Every deduction fires: format, both steps, seed, and both bleeds.
	spec := rainSpec(t)
	got := Evaluate(spec, "于是因为")
	assert.False(t, got.Pass)
	assert.InDelta(t, 0, got.Score, 1e-9)
}

func TestEvaluate_SampledReferencesAlwaysPass(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(11))
	for _, d := range []string{"hsk1", "hsk2", "hsk3", "hsk4", "hsk5", "hsk6", "unknown"} {
		for i := 0; i < 200; i++ {
			spec, err := Sample(rng, d, 200)
			require.NoError(t, err)

			ref := BuildExpectedReferenceAnswer(spec)
			_, _, ok := SplitTwoSentences(ref)
			require.True(t, ok, "reference %q does not split", ref)

			res := Evaluate(spec, ref)
			require.True(t, res.Pass, "%s: %q scored %.0f: %s", spec.ChainID, ref, res.Score, res.Explanation)
			require.GreaterOrEqual(t, res.Score, PassThreshold)

			require.NoError(t, ValidateGeneratedItem(spec, GeneratedItem{SeedZH: spec.Seed, ReferenceAnswerZH: ref}))
		}
	}
}

func TestEvaluate_EveryCatalogCombinationRoundTrips(t *testing.T) {
	t.Parallel()

	for _, chain := range Chains() {
		for _, p1 := range PatternsFor(chain.Step1) {
			for _, p2 := range PatternsFor(chain.Step2) {
				for _, scene := range ScenesFor(chain.SceneSchema) {
					spec := NewSpec(chain, p1, p2, scene)
					ref := BuildExpectedReferenceAnswer(spec)
					if res := Evaluate(spec, ref); !res.Pass {
						t.Fatalf("%s/%s/%s: %q failed: %s", p1.ID, p2.ID, scene.ID, ref, res.Explanation)
					}
					if err := ValidateGeneratedItem(spec, GeneratedItem{SeedZH: spec.Seed, ReferenceAnswerZH: ref}); err != nil {
						t.Fatalf("%s/%s/%s: %v", p1.ID, p2.ID, scene.ID, err)
					}
				}
			}
		}
	}
}
