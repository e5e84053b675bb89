package rulekit

import (
	"errors"
	"sort"

	"github.com/dmitrymomot/rulekit/pkg/catalog"
	"github.com/dmitrymomot/rulekit/pkg/dataset"
	"github.com/dmitrymomot/rulekit/pkg/rules"
)

// RuleSet declares the rules per field. Each entry is a rule string in the
// "name" or "name:parameter" grammar; entries may also bundle several rules
// pipe-separated, e.g. "required|min:10".
type RuleSet map[string][]string

// Messages carries per-field custom failure messages keyed "field.rule",
// e.g. "age.min". A matching custom message replaces the catalog-formatted
// text of that rule's failure.
type Messages map[string]string

// Validator binds a rule registry and a message catalog into a reusable
// validation front end. A Validator is read-only after construction and safe
// to share across concurrent validation passes; the per-pass state lives in
// short-lived MetaRules and requirement engines built inside Validate.
type Validator struct {
	registry *rules.Registry
	msgs     rules.Catalog
}

// Option configures a Validator instance.
type Option func(*Validator)

// WithCatalog substitutes the message catalog used for failure messages.
func WithCatalog(msgs rules.Catalog) Option {
	return func(v *Validator) {
		if msgs != nil {
			v.msgs = msgs
		}
	}
}

// WithRegistry substitutes the rule registry. Use this to add custom rules
// via rules.NewRegistry plus Register calls.
func WithRegistry(reg *rules.Registry) Option {
	return func(v *Validator) {
		if reg != nil {
			v.registry = reg
		}
	}
}

// New creates a Validator with the builtin rules and the default English
// catalog unless options substitute either.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	if v.msgs == nil {
		v.msgs = catalog.Default()
	}
	if v.registry == nil {
		v.registry = rules.NewRegistry(v.msgs)
	}
	return v
}

// ValidateOption configures a single validation pass.
type ValidateOption func(*passConfig)

type passConfig struct {
	custom Messages
}

// WithMessages supplies custom failure messages for this pass.
func WithMessages(custom Messages) ValidateOption {
	return func(c *passConfig) {
		c.custom = custom
	}
}

// Validate checks every field declared in set against data.
//
// Per field: the rule strings parse into MetaRules, the requirement engine
// resolves presence first, and only when the field is present do the
// remaining rules run against its value, stopping at the first failure.
// Fields are processed in name order so failures are deterministic.
//
// The returned error is a ValidationErrors collection when input failed
// validation, a configuration error (rules.ErrEmptyRule and friends) when
// the declarations themselves are defective, or nil.
func (v *Validator) Validate(data dataset.Accessor, set RuleSet, opts ...ValidateOption) error {
	var cfg passConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	fields := make([]string, 0, len(set))
	for field := range set {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var verrs ValidationErrors
	for _, field := range fields {
		failure, err := v.validateField(data, field, set[field], cfg.custom)
		if err != nil {
			return err
		}
		if failure != nil {
			verrs = append(verrs, failure)
		}
	}

	if verrs.IsEmpty() {
		return nil
	}
	return verrs
}

// validateField runs one field's pass. It returns the field's first
// validation failure, or a non-nil error for configuration defects that
// must abort the whole pass.
func (v *Validator) validateField(data dataset.Accessor, field string, ruleStrings []string, custom Messages) (*rules.ValidationError, error) {
	if len(ruleStrings) == 0 {
		return nil, nil
	}

	key := dataset.Name(field)

	var metaRules []*rules.MetaRule
	for _, s := range ruleStrings {
		specs, err := rules.ParseSpecList(s)
		if err != nil {
			return nil, err
		}
		for _, spec := range specs {
			m := rules.FromSpec(v.registry, spec)
			if msg, ok := custom[field+"."+spec.Name]; ok {
				m = m.WithMessage(msg)
			}
			metaRules = append(metaRules, m)
		}
	}

	engine, err := rules.NewRequirementEngine(key, metaRules, data, v.msgs)
	if err != nil {
		return nil, err
	}
	if _, rerr := engine.Resolve(); rerr != nil {
		var ve *rules.ValidationError
		if errors.As(rerr, &ve) {
			return ve, nil
		}
		return nil, rerr
	}
	if engine.ShouldSkipFurtherValidation() {
		return nil, nil
	}

	value, _ := data.Get(key)
	for _, m := range rules.FilterRequirementRules(metaRules) {
		if err := m.Validate(key, value); err != nil {
			var ve *rules.ValidationError
			if errors.As(err, &ve) {
				return ve, nil
			}
			return nil, err
		}
	}
	return nil, nil
}
