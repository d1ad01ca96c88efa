package connective

import (
	"fmt"
	"strings"
)

func renderTemplate(tpl, a, b string) string {
	return strings.ReplaceAll(strings.ReplaceAll(tpl, "{A}", a), "{B}", b)
}

func isTerminalPunct(r rune) bool {
	switch r {
	case '。', '.', '!', '！', '?', '？':
		return true
	}
	return false
}

func trimTrailingPunct(s string) string {
	return strings.TrimSpace(strings.TrimRightFunc(strings.TrimSpace(s), isTerminalPunct))
}

// BuildExpectedReferenceAnswer renders the canonical two-sentence answer:
// step1 over (P1, P2), then step2 over (P2, P3), joined by one 。 and with
// no terminal punctuation.
func BuildExpectedReferenceAnswer(spec Spec) string {
	s1 := renderTemplate(spec.Step1.PatternTpl, spec.Props.P1, spec.Props.P2)
	s2 := renderTemplate(spec.Step2.PatternTpl, spec.Props.P2, spec.Props.P3)
	return trimTrailingPunct(s1) + "。" + trimTrailingPunct(s2)
}

func BuildCompactChallengeZH(spec Spec) string {
	return fmt.Sprintf("用“%s”和“%s”，只写两句。", spec.Step1.MarkersZH, spec.Step2.MarkersZH)
}

// SplitTwoSentences normalizes ! and ? to 。, drops terminal punctuation and
// splits on 。. It succeeds only when exactly two non-empty parts remain.
func SplitTwoSentences(text string) (string, string, bool) {
	t := strings.TrimSpace(text)
	t = strings.NewReplacer("!", "。", "！", "。", "?", "。", "？", "。").Replace(t)
	t = trimTrailingPunct(t)

	parts := make([]string, 0, 2)
	for _, p := range strings.Split(t, "。") {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func normalizeForCompare(s string) string {
	return strings.Join(strings.Fields(s), "")
}
