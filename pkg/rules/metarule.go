package rules

import (
	"errors"

	"github.com/dmitrymomot/rulekit/pkg/dataset"
)

// MetaRule binds one rule to one field: a canonical rule name, an optional
// parameter, and an optional custom message that replaces the failure text.
// MetaRules are immutable once constructed and live for a single validation
// pass.
//
// The parameter is any scalar, not just a string, because callers may
// construct MetaRules programmatically rather than from parsed rule strings.
type MetaRule struct {
	reg     *Registry
	name    string
	param   any
	message string
}

// NewMetaRule binds a rule name and parameter to the given registry. Pass a
// nil param for parameterless rules.
func NewMetaRule(reg *Registry, name string, param any) *MetaRule {
	return &MetaRule{reg: reg, name: name, param: param}
}

// FromSpec builds a MetaRule from a parsed Spec. An empty Spec parameter
// becomes a nil MetaRule parameter.
func FromSpec(reg *Registry, spec Spec) *MetaRule {
	var param any
	if spec.Param != "" {
		param = spec.Param
	}
	return NewMetaRule(reg, spec.Name, param)
}

// WithMessage returns a copy of the MetaRule carrying a custom failure
// message. The original MetaRule is left untouched.
func (m *MetaRule) WithMessage(msg string) *MetaRule {
	clone := *m
	clone.message = msg
	return &clone
}

// Name returns the canonical rule name.
func (m *MetaRule) Name() string { return m.name }

// Param returns the bound parameter, nil when absent.
func (m *MetaRule) Param() any { return m.param }

// Validate dispatches to the registry and runs the resolved rule against the
// field's value. An unregistered name fails with an unknown-rule error
// carrying the offending name. When the rule fails and a custom message was
// supplied, the failure's message is replaced while its kind is preserved;
// configuration errors pass through untouched.
func (m *MetaRule) Validate(field dataset.Key, value any) error {
	rule, ok := m.reg.Get(m.name)
	if !ok {
		return &ValidationError{
			Field:   field.String(),
			Rule:    m.name,
			Kind:    KindUnknownRule,
			Message: m.reg.Messages().Get(msgUnknownRule, m.name),
		}
	}

	err := rule.Validate(field, value, m.param)
	if err == nil || m.message == "" {
		return err
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.withMessage(m.message)
	}
	return err
}
