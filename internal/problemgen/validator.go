package problemgen

import "fmt"

// Validator checks a generated level for structural soundness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator, used in error
	// messages and logs, e.g. "structural", "choice", "collection".
	Name() string

	// Validate returns nil if the level passes, or a ValidationError
	// describing the first problem found.
	Validate(l *Level) *ValidationError
}

// ValidationError describes why a level failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// DefaultValidators returns the standard validator chain. They run in order
// and the first failure stops the pipeline.
func DefaultValidators() []Validator {
	return []Validator{
		&StructuralValidator{},
		&ChoiceValidator{},
		&CollectionValidator{},
	}
}

// Validate runs the chain against l and returns the first failure.
func Validate(l *Level, validators []Validator) *ValidationError {
	for _, v := range validators {
		if err := v.Validate(l); err != nil {
			return err
		}
	}
	return nil
}
