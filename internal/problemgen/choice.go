package problemgen

import (
	"fmt"
	"strings"
)

const (
	minChoices = 2
	maxChoices = 6
)

// ChoiceValidator checks single-choice levels: 2 to 6 options, exactly one
// correct, and no two options that look the same. Collection levels pass.
type ChoiceValidator struct{}

func (v *ChoiceValidator) Name() string { return "choice" }

func (v *ChoiceValidator) Validate(l *Level) *ValidationError {
	if l.Mode != ModeSingleChoice {
		return nil
	}
	if n := len(l.Options); n < minChoices || n > maxChoices {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("single choice needs %d-%d options, got %d", minChoices, maxChoices, n),
			Retryable: true,
		}
	}

	correct := 0
	seen := make(map[string]bool, len(l.Options))
	for _, o := range l.Options {
		if o.IsCorrect {
			correct++
		}
		key := strings.ToLower(strings.TrimSpace(o.Value.String()))
		if seen[key] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("duplicate displayed value %q", o.Value.String()),
				Retryable: true,
			}
		}
		seen[key] = true
	}
	if correct != 1 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected exactly 1 correct option, got %d", correct),
			Retryable: true,
		}
	}
	return nil
}
