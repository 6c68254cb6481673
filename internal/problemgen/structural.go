package problemgen

import (
	"fmt"
	"unicode/utf8"
)

const maxQuestionRunes = 200

// StructuralValidator checks that required fields are present, ids are
// unique and every number is non-negative.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(l *Level) *ValidationError {
	if l.Question == "" {
		return v.fail("question is empty")
	}
	if utf8.RuneCountInString(l.Question) > maxQuestionRunes {
		return v.fail(fmt.Sprintf("question exceeds %d characters", maxQuestionRunes))
	}
	if l.Mode != ModeSingleChoice && l.Mode != ModeCollection {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("mode must be %q or %q", ModeSingleChoice, ModeCollection),
			Retryable: false,
		}
	}
	if l.Target < 0 {
		return v.fail("target is negative")
	}
	if len(l.Options) == 0 {
		return v.fail("level has no options")
	}

	seen := make(map[string]bool, len(l.Options))
	for i, o := range l.Options {
		if o.ID == "" {
			return v.fail(fmt.Sprintf("option %d has an empty id", i+1))
		}
		if seen[o.ID] {
			return v.fail(fmt.Sprintf("duplicate option id %q", o.ID))
		}
		seen[o.ID] = true

		switch o.Value.Kind {
		case PayloadNumber:
			if o.Value.Number < 0 {
				return v.fail(fmt.Sprintf("option %q has negative value %d", o.ID, o.Value.Number))
			}
		case PayloadText, PayloadEmoji:
			if o.Value.Text == "" {
				return v.fail(fmt.Sprintf("option %q has an empty value", o.ID))
			}
		default:
			return v.fail(fmt.Sprintf("option %q has unknown payload kind %q", o.ID, o.Value.Kind))
		}

		if n, ok := o.Numeric(); ok && n < 0 {
			return v.fail(fmt.Sprintf("option %q has negative numeric value %d", o.ID, n))
		}
	}
	return nil
}

func (v *StructuralValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
}
