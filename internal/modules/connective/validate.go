package connective

import (
	"errors"
	"fmt"
	"strings"
)

// SchemaViolation reports why a generated item does not conform to its Spec.
type SchemaViolation struct {
	Message string
}

func (e *SchemaViolation) Error() string { return e.Message }

func violation(format string, args ...any) error {
	return &SchemaViolation{Message: fmt.Sprintf(format, args...)}
}

// IsSchemaViolation reports whether err is, or wraps, a *SchemaViolation.
func IsSchemaViolation(err error) bool {
	var sv *SchemaViolation
	return errors.As(err, &sv)
}

// ValidateGeneratedItem is the strict gate for externally generated items.
// It returns nil only when the item reproduces the rendered reference for
// spec exactly (modulo whitespace) and both sentences carry their
// propositions, strong markers and structure.
func ValidateGeneratedItem(spec Spec, item GeneratedItem) error {
	if strings.TrimSpace(item.SeedZH) != strings.TrimSpace(spec.Seed) {
		return violation("seed_zh does not match SPEC.seed exactly")
	}

	got1, got2, ok := SplitTwoSentences(item.ReferenceAnswerZH)
	if !ok {
		return violation("reference_answer_zh must contain exactly two sentences")
	}
	exp1, exp2, ok := SplitTwoSentences(BuildExpectedReferenceAnswer(spec))
	if !ok {
		return violation("internal error: expected reference split failed")
	}

	if normalizeForCompare(got1) != normalizeForCompare(exp1) ||
		normalizeForCompare(got2) != normalizeForCompare(exp2) {
		return violation("reference_answer_zh did not apply templates exactly to P1/P2/P3")
	}

	if err := checkSentence(spec.Step1, got1, spec.Props.P1, spec.Props.P2); err != nil {
		return violation("reference sentence1 invalid: %s", err)
	}
	if err := checkSentence(spec.Step2, got2, spec.Props.P2, spec.Props.P3); err != nil {
		return violation("reference sentence2 invalid: %s", err)
	}
	return nil
}

func checkSentence(step Step, sentence, a, b string) error {
	if !strings.Contains(sentence, a) {
		return fmt.Errorf("缺少命题片段A：'%s'", a)
	}
	if !strings.Contains(sentence, b) {
		return fmt.Errorf("缺少命题片段B：'%s'", b)
	}
	return checkPattern(step, sentence)
}

// checkPattern requires every strong marker and a structural match, but not
// the propositions.
func checkPattern(step Step, sentence string) error {
	for _, m := range step.StrongMarkers {
		if m != "" && !strings.Contains(sentence, m) {
			return fmt.Errorf("缺少强标记：'%s'", m)
		}
	}
	if !Match(step.CheckRegex, sentence) {
		return fmt.Errorf("句式不匹配模式 %s", step.MarkersZH)
	}
	return nil
}
