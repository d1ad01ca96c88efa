package challenges

import (
	"github.com/yungbote/connective-drills/internal/modules/connective"
)

type ValidateItemOutput struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

// ValidateItem runs the strict gate over an externally produced item.
func (u Usecases) ValidateItem(spec connective.Spec, item connective.GeneratedItem) ValidateItemOutput {
	if err := connective.ValidateGeneratedItem(spec, item); err != nil {
		u.deps.Metrics.IncSchemaViolation()
		return ValidateItemOutput{OK: false, Message: err.Error()}
	}
	return ValidateItemOutput{OK: true}
}
