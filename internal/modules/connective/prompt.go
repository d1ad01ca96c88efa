package connective

import (
	"encoding/json"
	"fmt"
)

// SystemPrompt instructs an item generator to echo a Spec back as a strict
// JSON item. Its output still goes through ValidateGeneratedItem.
const SystemPrompt = `
You are a Chinese learning item generator.
You MUST follow the provided SPEC exactly.

Return ONLY strict JSON with keys:
  seed_zh, challenge_zh, reference_answer_zh, meta

Rules:
- Use SPEC.seed as seed_zh verbatim.
- Do NOT add any new facts. Use ONLY P1, P2, P3 from SPEC.props.
- Use P1, P2, P3 verbatim (no paraphrasing / no synonym replacement).
- The learner must rewrite using TWO patterns:
  - Sentence 1 must connect P1 and P2 using SPEC.step1.pattern_tpl
  - Sentence 2 must connect P2 and P3 using SPEC.step2.pattern_tpl
- reference_answer_zh format must be EXACTLY two sentences separated by ONE '。'
  - Sentence1 = apply step1 template with (A=P1, B=P2)
  - Sentence2 = apply step2 template with (A=P2, B=P3)
  - Output: "<Sentence1>。<Sentence2>"  (NO extra '。' at the end)
- challenge_zh must clearly instruct:
  - which TWO connector patterns to use, by showing SPEC.step1.markers_zh and SPEC.step2.markers_zh
  - "只写两句" (two sentences only)
- meta must include at minimum:
  chain_id, scene_id, step1.pattern_id, step2.pattern_id, step1.relation, step2.relation, version
`

// BuildUserMessage wraps the Spec JSON in the generator's user turn.
func BuildUserMessage(spec Spec) (string, error) {
	raw, err := json.Marshal(spec)
	if err != nil {
		return "", fmt.Errorf("marshal spec: %w", err)
	}
	return "SPEC_JSON:\n" + string(raw), nil
}
