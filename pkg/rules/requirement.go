package rules

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/rulekit/pkg/dataset"
)

// Outcome is the result of resolving one field's presence against its
// requirement constraints.
type Outcome int

const (
	// OutcomeValid means presence resolution passed; whether per-value rules
	// still run is reported separately by ShouldSkipFurtherValidation.
	OutcomeValid Outcome = iota

	// OutcomeMissingRequired means a required field is absent.
	OutcomeMissingRequired

	// OutcomeExclusiveConflict means the field and one of its mutually
	// exclusive partners are both present.
	OutcomeExclusiveConflict

	// OutcomeMissingAlternative means neither the field nor any of its
	// requiredWithout partners is present.
	OutcomeMissingAlternative
)

// String implements the fmt.Stringer interface.
func (o Outcome) String() string {
	switch o {
	case OutcomeValid:
		return "valid"
	case OutcomeMissingRequired:
		return "missing required"
	case OutcomeExclusiveConflict:
		return "mutually exclusive conflict"
	case OutcomeMissingAlternative:
		return "missing without alternative"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// RequirementConstraints is a read-only view over a field's MetaRules holding
// only its presence constraints: whether the field is required and which
// other fields make its presence mutually exclusive. Built once per field per
// validation pass.
type RequirementConstraints struct {
	required        bool
	requiredWithout []dataset.Key
}

// ConstraintsFromMetaRules extracts the requirement constraints for field
// from its MetaRule list. A requiredWithout rule without a usable field
// identifier as parameter, or one referencing the field itself, is a
// configuration error.
func ConstraintsFromMetaRules(field dataset.Key, metaRules []*MetaRule) (*RequirementConstraints, error) {
	c := &RequirementConstraints{}
	for _, m := range metaRules {
		switch m.Name() {
		case RuleRequired:
			c.required = true
		case RuleRequiredWithout:
			if m.Param() == nil {
				return nil, fmt.Errorf("%w: requiredWithout on field '%s'", ErrMissingParameter, field)
			}
			other, ok := dataset.KeyOf(m.Param())
			if !ok {
				return nil, fmt.Errorf("%w: requiredWithout on field '%s' got %T", ErrMissingParameter, field, m.Param())
			}
			if other == field {
				return nil, fmt.Errorf("%w: field '%s'", ErrSelfReference, field)
			}
			c.requiredWithout = append(c.requiredWithout, other)
		}
	}
	return c, nil
}

// IsRequired reports whether the field carries a required rule.
func (c *RequirementConstraints) IsRequired() bool {
	return c.required
}

// RequiredWithoutFields returns the mutually exclusive partner fields in
// declaration order.
func (c *RequirementConstraints) RequiredWithoutFields() []dataset.Key {
	out := make([]dataset.Key, len(c.requiredWithout))
	copy(out, c.requiredWithout)
	return out
}

// HasRequiredWithoutFields reports whether any requiredWithout rule was
// declared.
func (c *RequirementConstraints) HasRequiredWithoutFields() bool {
	return len(c.requiredWithout) > 0
}

// FormatRequiredWithoutList renders the partner fields for user-facing
// messages, e.g. 'a', 'b' or 'c'. Declaration order is preserved.
func (c *RequirementConstraints) FormatRequiredWithoutList() string {
	names := make([]string, len(c.requiredWithout))
	for i, k := range c.requiredWithout {
		names[i] = "'" + k.String() + "'"
	}
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}

// RequirementEngine resolves one field's presence against its requirement
// constraints and the dataset. Engines are built per field per validation
// pass and hold no external resources.
type RequirementEngine struct {
	field       dataset.Key
	constraints *RequirementConstraints
	data        dataset.Accessor
	msgs        Catalog
	skip        bool
}

// NewRequirementEngine derives the field's constraints from its MetaRules
// and binds them to the dataset. Constraint defects (missing requiredWithout
// parameter, self-reference) fail here, before any resolution runs. A nil
// catalog falls back to resolving message keys to themselves.
func NewRequirementEngine(field dataset.Key, metaRules []*MetaRule, data dataset.Accessor, msgs Catalog) (*RequirementEngine, error) {
	constraints, err := ConstraintsFromMetaRules(field, metaRules)
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = keyCatalog{}
	}
	return &RequirementEngine{
		field:       field,
		constraints: constraints,
		data:        data,
		msgs:        msgs,
	}, nil
}

// Constraints exposes the derived requirement constraints.
func (e *RequirementEngine) Constraints() *RequirementConstraints {
	return e.constraints
}

// Resolve runs the presence state machine. Branches in precedence order:
//
//	present + partner present          -> exclusive conflict
//	present                            -> valid
//	absent + partner present + required -> missing required (required wins)
//	absent + partner present           -> valid, skip further validation
//	absent + required                  -> missing required
//	absent + requiredWithout declared  -> missing alternative
//	absent, no constraints             -> valid, skip further validation
//
// Failing outcomes return a *ValidationError alongside the outcome.
func (e *RequirementEngine) Resolve() (Outcome, error) {
	present := e.data.Has(e.field)
	partnerPresent := false
	for _, other := range e.constraints.RequiredWithoutFields() {
		if e.data.Has(other) {
			partnerPresent = true
			break
		}
	}

	switch {
	case present && partnerPresent:
		return OutcomeExclusiveConflict, e.fail(RuleRequiredWithout,
			e.msgs.Get(msgOnlyOneOfFields, e.field, e.constraints.FormatRequiredWithoutList()))
	case present:
		return OutcomeValid, nil
	case partnerPresent && e.constraints.IsRequired():
		return OutcomeMissingRequired, e.fail(RuleRequired,
			e.msgs.Get(msgRequiredMissing, e.field))
	case partnerPresent:
		e.skip = true
		return OutcomeValid, nil
	case e.constraints.IsRequired():
		return OutcomeMissingRequired, e.fail(RuleRequired,
			e.msgs.Get(msgRequiredMissing, e.field))
	case e.constraints.HasRequiredWithoutFields():
		return OutcomeMissingAlternative, e.fail(RuleRequiredWithout,
			e.msgs.Get(msgEitherFieldOrOther, e.field, e.constraints.FormatRequiredWithoutList()))
	}

	e.skip = true
	return OutcomeValid, nil
}

// ShouldSkipFurtherValidation reports whether per-value rules should be
// skipped for this field: true exactly when Resolve passed with the field
// absent, either because a partner satisfied the exclusivity or because the
// field is plain optional.
func (e *RequirementEngine) ShouldSkipFurtherValidation() bool {
	return e.skip
}

func (e *RequirementEngine) fail(rule, message string) *ValidationError {
	return &ValidationError{
		Field:   e.field.String(),
		Rule:    rule,
		Kind:    KindRequirement,
		Message: message,
	}
}

// FilterRequirementRules strips required and requiredWithout entries from a
// MetaRule list. Requirement rules are resolved by the engine, so the
// per-value dispatch must never re-encounter them.
func FilterRequirementRules(metaRules []*MetaRule) []*MetaRule {
	out := make([]*MetaRule, 0, len(metaRules))
	for _, m := range metaRules {
		if m.Name() == RuleRequired || m.Name() == RuleRequiredWithout {
			continue
		}
		out = append(out, m)
	}
	return out
}
