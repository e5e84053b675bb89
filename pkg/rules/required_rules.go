package rules

import "github.com/dmitrymomot/rulekit/pkg/dataset"

// RequiredRule is the placeholder registered under "required". Presence is
// resolved by the RequirementEngine before per-value dispatch, so this rule
// is unreachable through the normal flow; it exists so a direct reference to
// "required" never surfaces as an unknown rule. Invoked directly it always
// signals a KindRequired failure, because a bare (field, value) pair carries
// no presence information to decide otherwise.
type RequiredRule struct {
	msgs Catalog
}

// Validate implements the Rule interface.
func (r RequiredRule) Validate(field dataset.Key, _ any, _ any) error {
	return &ValidationError{
		Field:   field.String(),
		Rule:    RuleRequired,
		Kind:    KindRequired,
		Message: r.msgs.Get(msgRequiredMissing, field),
	}
}

// RequiredWithoutRule is the placeholder registered under "requiredwithout".
// Like RequiredRule it is intercepted by the RequirementEngine and never
// reached through the normal dispatch path.
type RequiredWithoutRule struct {
	msgs Catalog
}

// Validate implements the Rule interface.
func (r RequiredWithoutRule) Validate(field dataset.Key, _ any, _ any) error {
	return &ValidationError{
		Field:   field.String(),
		Rule:    RuleRequiredWithout,
		Kind:    KindRequired,
		Message: r.msgs.Get(msgRequiredMissing, field),
	}
}
