package rules

import (
	"fmt"

	"github.com/dmitrymomot/rulekit/pkg/dataset"
)

// mustBeString builds the shared non-string failure used by every rule that
// only operates on string values.
func mustBeString(field dataset.Key, rule string) *ValidationError {
	return &ValidationError{
		Field:   field.String(),
		Rule:    rule,
		Kind:    KindValue,
		Message: fmt.Sprintf("Field '%s' must be a string.", field),
	}
}

// StringRule validates that the value is a string.
type StringRule struct {
	checks TypeChecker
}

// Validate implements the Rule interface.
func (r StringRule) Validate(field dataset.Key, value any, _ any) error {
	if r.checks.IsString(value) {
		return nil
	}
	return mustBeString(field, RuleString)
}

// NumericRule validates that the value is numeric. Numeric strings pass.
type NumericRule struct {
	msgs   Catalog
	checks TypeChecker
}

// Validate implements the Rule interface.
func (r NumericRule) Validate(field dataset.Key, value any, _ any) error {
	if _, ok := r.checks.Numeric(value); ok {
		return nil
	}
	return &ValidationError{
		Field:   field.String(),
		Rule:    RuleNumeric,
		Kind:    KindValue,
		Message: r.msgs.Get(msgMustBeNumeric, field),
	}
}

// IntegerRule validates that the value is an integer. Integral floats and
// digit strings pass.
type IntegerRule struct {
	msgs   Catalog
	checks TypeChecker
}

// Validate implements the Rule interface.
func (r IntegerRule) Validate(field dataset.Key, value any, _ any) error {
	if _, ok := r.checks.Integer(value); ok {
		return nil
	}
	return &ValidationError{
		Field:   field.String(),
		Rule:    RuleInteger,
		Kind:    KindValue,
		Message: r.msgs.Get(msgMustBeInteger, field),
	}
}
