// Package validators contains validation logic for pipeline inputs
package validators

import (
	"go.uber.org/zap"
)

// InputValidator provides methods to validate input sequences before
// processing
type InputValidator struct {
	logger *zap.Logger
}

// NewInputValidator creates a new instance of InputValidator
func NewInputValidator(logger *zap.Logger) *InputValidator {
	return &InputValidator{
		logger: logger,
	}
}

// NonEmpty reports whether the input sequence contains at least one element.
// No further validation is performed; any integer value is acceptable.
func (v *InputValidator) NonEmpty(input []int) bool {
	v.logger.Debug("input validation", zap.Int("inputSize", len(input)))
	return len(input) > 0
}
