package rules

import (
	"unicode/utf8"

	"github.com/dmitrymomot/rulekit/pkg/dataset"
)

// MinRule validates that a numeric value is at least the parameter
// (inclusive bound). The parameter is checked before the value so a
// misconfigured minimum fails distinctly from bad input.
type MinRule struct {
	msgs   Catalog
	checks TypeChecker
}

// Validate implements the Rule interface.
func (r MinRule) Validate(field dataset.Key, value any, param any) error {
	min, ok := r.checks.Numeric(param)
	if !ok {
		return &ValidationError{
			Field:   field.String(),
			Rule:    RuleMin,
			Kind:    KindValue,
			Message: r.msgs.Get(msgMinRequiresNumber),
		}
	}
	v, ok := r.checks.Numeric(value)
	if !ok {
		return &ValidationError{
			Field:   field.String(),
			Rule:    RuleMin,
			Kind:    KindValue,
			Message: r.msgs.Get(msgMustBeNumeric, field),
		}
	}
	if v < min {
		return &ValidationError{
			Field:   field.String(),
			Rule:    RuleMin,
			Kind:    KindValue,
			Message: r.msgs.Get(msgMinValue, field, formatNumber(min)),
		}
	}
	return nil
}

// MaxRule validates that a numeric value is at most the parameter
// (inclusive bound).
type MaxRule struct {
	msgs   Catalog
	checks TypeChecker
}

// Validate implements the Rule interface.
func (r MaxRule) Validate(field dataset.Key, value any, param any) error {
	max, ok := r.checks.Numeric(param)
	if !ok {
		return &ValidationError{
			Field:   field.String(),
			Rule:    RuleMax,
			Kind:    KindValue,
			Message: r.msgs.Get(msgMaxRequiresNumber),
		}
	}
	v, ok := r.checks.Numeric(value)
	if !ok {
		return &ValidationError{
			Field:   field.String(),
			Rule:    RuleMax,
			Kind:    KindValue,
			Message: r.msgs.Get(msgMustBeNumeric, field),
		}
	}
	if v > max {
		return &ValidationError{
			Field:   field.String(),
			Rule:    RuleMax,
			Kind:    KindValue,
			Message: r.msgs.Get(msgMaxValue, field, formatNumber(max)),
		}
	}
	return nil
}

// MinLengthRule validates that a string value has at least the parameter's
// number of characters, counted in runes.
type MinLengthRule struct {
	msgs   Catalog
	checks TypeChecker
}

// Validate implements the Rule interface.
func (r MinLengthRule) Validate(field dataset.Key, value any, param any) error {
	n, ok := r.checks.Integer(param)
	if !ok {
		return &ValidationError{
			Field:   field.String(),
			Rule:    RuleMinLength,
			Kind:    KindValue,
			Message: r.msgs.Get(msgLengthRequiresInt),
		}
	}
	s, ok := value.(string)
	if !ok {
		return mustBeString(field, RuleMinLength)
	}
	if int64(utf8.RuneCountInString(s)) < n {
		return &ValidationError{
			Field:   field.String(),
			Rule:    RuleMinLength,
			Kind:    KindValue,
			Message: r.msgs.Get(msgMinLength, field, n),
		}
	}
	return nil
}

// MaxLengthRule validates that a string value has at most the parameter's
// number of characters, counted in runes.
type MaxLengthRule struct {
	msgs   Catalog
	checks TypeChecker
}

// Validate implements the Rule interface.
func (r MaxLengthRule) Validate(field dataset.Key, value any, param any) error {
	n, ok := r.checks.Integer(param)
	if !ok {
		return &ValidationError{
			Field:   field.String(),
			Rule:    RuleMaxLength,
			Kind:    KindValue,
			Message: r.msgs.Get(msgLengthRequiresInt),
		}
	}
	s, ok := value.(string)
	if !ok {
		return mustBeString(field, RuleMaxLength)
	}
	if int64(utf8.RuneCountInString(s)) > n {
		return &ValidationError{
			Field:   field.String(),
			Rule:    RuleMaxLength,
			Kind:    KindValue,
			Message: r.msgs.Get(msgMaxLength, field, n),
		}
	}
	return nil
}
