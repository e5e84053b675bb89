package rules

// Kind classifies a validation failure. Callers must not branch on message
// text; the kind is the only part of a failure with control-flow meaning.
type Kind int

const (
	// KindValue marks a failed per-value check (string, numeric, min, ...).
	KindValue Kind = iota

	// KindRequired marks the failure signalled by the required placeholder
	// rule when it is invoked directly, outside requirement resolution.
	KindRequired

	// KindRequirement marks a presence-resolution failure produced by the
	// requirement engine.
	KindRequirement

	// KindUnknownRule marks a reference to a rule name absent from the
	// registry.
	KindUnknownRule
)

// ValidationError describes a single validation failure for one field.
// The message is user-facing and catalog-formatted; Field and Rule identify
// where the failure came from.
type ValidationError struct {
	Field   string
	Rule    string
	Kind    Kind
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// withMessage returns a copy of the failure carrying msg instead of the
// original message. Field, Rule, and Kind are preserved.
func (e *ValidationError) withMessage(msg string) *ValidationError {
	clone := *e
	clone.Message = msg
	return &clone
}
