package connective

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateGeneratedItem(t *testing.T) {
	t.Parallel()

	spec := rainSpec(t)
	cases := []struct {
		name    string
		item    GeneratedItem
		wantMsg string
	}{
		{
			name: "exact reference",
			item: GeneratedItem{SeedZH: "下雨了", ReferenceAnswerZH: rainReference},
		},
		{
			name: "whitespace and terminal punctuation tolerated",
			item: GeneratedItem{SeedZH: " 下雨了 ", ReferenceAnswerZH: "因为 下雨了，所以我没去远处！ 我没去远处，于是我就在附近的小店慢慢逛。"},
		},
		{
			name:    "seed mismatch",
			item:    GeneratedItem{SeedZH: "下雨", ReferenceAnswerZH: rainReference},
			wantMsg: "seed_zh does not match SPEC.seed exactly",
		},
		{
			name:    "one sentence",
			item:    GeneratedItem{SeedZH: "下雨了", ReferenceAnswerZH: "因为下雨了，所以我没去远处"},
			wantMsg: "reference_answer_zh must contain exactly two sentences",
		},
		{
			name:    "three sentences",
			item:    GeneratedItem{SeedZH: "下雨了", ReferenceAnswerZH: rainReference + "。我很开心"},
			wantMsg: "reference_answer_zh must contain exactly two sentences",
		},
		{
			name:    "paraphrased proposition",
			item:    GeneratedItem{SeedZH: "下雨了", ReferenceAnswerZH: "因为下雨了，所以我没去远处。我没去远处，于是我在附近逛了逛"},
			wantMsg: "reference_answer_zh did not apply templates exactly to P1/P2/P3",
		},
		{
			name:    "swapped sentences",
			item:    GeneratedItem{SeedZH: "下雨了", ReferenceAnswerZH: "我没去远处，于是我就在附近的小店慢慢逛。因为下雨了，所以我没去远处"},
			wantMsg: "reference_answer_zh did not apply templates exactly to P1/P2/P3",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateGeneratedItem(spec, tc.item)
			if tc.wantMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			var sv *SchemaViolation
			require.True(t, errors.As(err, &sv))
			assert.Equal(t, tc.wantMsg, sv.Message)
			assert.True(t, IsSchemaViolation(err))
		})
	}
}

func TestCheckSentence_Messages(t *testing.T) {
	t.Parallel()

	step := rainSpec(t).Step1

	err := checkSentence(step, "因为天晴，所以我没去远处", "下雨了", "我没去远处")
	require.Error(t, err)
	assert.Equal(t, "缺少命题片段A：'下雨了'", err.Error())

	err = checkSentence(step, "因为下雨了，所以我在家", "下雨了", "我没去远处")
	require.Error(t, err)
	assert.Equal(t, "缺少命题片段B：'我没去远处'", err.Error())

	err = checkSentence(step, "下雨了，所以我没去远处", "下雨了", "我没去远处")
	require.Error(t, err)
	assert.Equal(t, "缺少强标记：'因为'", err.Error())

	err = checkSentence(step, "所以下雨了，因为我没去远处", "下雨了", "我没去远处")
	require.Error(t, err)
	assert.Equal(t, "句式不匹配模式 因为…所以…", err.Error())
}

func TestValidateGeneratedItem_WrapsSentenceErrors(t *testing.T) {
	t.Parallel()

	// A hand-edited spec whose template omits its own strong marker can only
	// fail at the per-sentence stage.
	spec := rainSpec(t)
	spec.Step2.PatternTpl = "{A}，{B}"
	item := GeneratedItem{SeedZH: spec.Seed, ReferenceAnswerZH: BuildExpectedReferenceAnswer(spec)}

	err := ValidateGeneratedItem(spec, item)
	require.Error(t, err)
	assert.Equal(t, "reference sentence2 invalid: 缺少强标记：'于是'", err.Error())
}
