package connective

import "strings"

const (
	PassThreshold = 60.0

	penaltyFormat     = 40.0
	penaltyStep       = 25.0
	penaltySeed       = 15.0
	penaltyMarkerLeak = 8.0
)

const (
	msgEmpty   = "答案为空。请按要求只写两句。"
	msgSuccess = "结构正确：两句都满足连接词模式，并围绕种子短语展开。"
)

// Result is the outcome of grading a learner answer.
type Result struct {
	Pass        bool    `json:"pass"`
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}

// Evaluate grades free text against spec with partial credit. It never
// fails; malformed input simply scores low.
func Evaluate(spec Spec, answer string) Result {
	ans := strings.TrimSpace(answer)
	if ans == "" {
		return Result{Pass: false, Score: 0, Explanation: msgEmpty}
	}

	score := 100.0
	var notes []string

	s1, s2, ok := SplitTwoSentences(ans)
	if !ok {
		score -= penaltyFormat
		notes = append(notes, "格式错误：需要正好两句（用句号分隔）")
		s1, s2 = ans, ans
	}

	if err := checkPattern(spec.Step1, s1); err != nil {
		score -= penaltyStep
		notes = append(notes, "第1句不符合要求："+err.Error())
	}
	if err := checkPattern(spec.Step2, s2); err != nil {
		score -= penaltyStep
		notes = append(notes, "第2句不符合要求："+err.Error())
	}

	if seed := trimTrailingPunct(spec.Seed); seed != "" && !strings.Contains(ans, seed) {
		score -= penaltySeed
		notes = append(notes, "内容未围绕种子短语")
	}

	if containsAny(s1, spec.Step2.StrongMarkers) {
		score -= penaltyMarkerLeak
		notes = append(notes, "第1句混入了第2步连接标记")
	}
	if containsAny(s2, spec.Step1.StrongMarkers) {
		score -= penaltyMarkerLeak
		notes = append(notes, "第2句混入了第1步连接标记")
	}

	score = min(max(score, 0), 100)

	explanation := msgSuccess
	if len(notes) > 0 {
		explanation = strings.Join(notes, "；") + "。"
	}
	return Result{Pass: score >= PassThreshold, Score: score, Explanation: explanation}
}
