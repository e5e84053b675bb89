package rules

import "strings"

// Canonical names of the builtin rules. Requirement rules are listed here
// too because the registry answers for them even though the requirement
// engine resolves them before per-value dispatch.
const (
	RuleRequired        = "required"
	RuleRequiredWithout = "requiredwithout"
	RuleString          = "string"
	RuleNumeric         = "numeric"
	RuleInteger         = "integer"
	RuleMin             = "min"
	RuleMax             = "max"
	RuleMinLength       = "minlength"
	RuleMaxLength       = "maxlength"
	RuleEmail           = "email"
	RuleUUID            = "uuid"
	RuleRegex           = "regex"
	RuleDatetime        = "datetime"
)

// Registry maps canonical lower-cased rule names to Rule implementations.
// Lookups for unknown names report absence instead of failing, so the
// registry can be queried speculatively; converting absence into an
// "unknown rule" failure is the MetaRule's job.
//
// The registry is mutated only by Register. Once fully populated it is
// read-only and safe to share across concurrent validation passes.
type Registry struct {
	msgs   Catalog
	checks TypeChecker
	rules  map[string]Rule
}

// RegistryOption configures a Registry instance.
type RegistryOption func(*Registry)

// WithTypeChecker substitutes the type predicates used by the builtin rules.
func WithTypeChecker(checks TypeChecker) RegistryOption {
	return func(r *Registry) {
		if checks != nil {
			r.checks = checks
		}
	}
}

// NewRegistry creates a registry pre-populated with the builtin rules, all
// formatting their failures through msgs. A nil catalog falls back to
// resolving every key to itself.
func NewRegistry(msgs Catalog, opts ...RegistryOption) *Registry {
	if msgs == nil {
		msgs = keyCatalog{}
	}

	r := &Registry{
		msgs:   msgs,
		checks: nativeChecker{},
		rules:  make(map[string]Rule),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.Register(RuleRequired, RequiredRule{msgs: msgs})
	r.Register(RuleRequiredWithout, RequiredWithoutRule{msgs: msgs})
	r.Register(RuleString, StringRule{checks: r.checks})
	r.Register(RuleNumeric, NumericRule{msgs: msgs, checks: r.checks})
	r.Register(RuleInteger, IntegerRule{msgs: msgs, checks: r.checks})
	r.Register(RuleMin, MinRule{msgs: msgs, checks: r.checks})
	r.Register(RuleMax, MaxRule{msgs: msgs, checks: r.checks})
	r.Register(RuleMinLength, MinLengthRule{msgs: msgs, checks: r.checks})
	r.Register(RuleMaxLength, MaxLengthRule{msgs: msgs, checks: r.checks})
	r.Register(RuleEmail, EmailRule{msgs: msgs, checks: r.checks})
	r.Register(RuleUUID, UUIDRule{msgs: msgs, checks: r.checks})
	r.Register(RuleRegex, RegexRule{msgs: msgs, checks: r.checks})
	r.Register(RuleDatetime, DatetimeRule{msgs: msgs, checks: r.checks})

	return r
}

// Register binds a rule implementation to a name, replacing any previous
// binding. The name is canonicalized the same way the parser canonicalizes
// rule strings.
func (r *Registry) Register(name string, rule Rule) {
	if rule == nil {
		return
	}
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return
	}
	r.rules[name] = rule
}

// Get returns the rule registered under the canonical name, and whether one
// exists.
func (r *Registry) Get(name string) (Rule, bool) {
	rule, ok := r.rules[name]
	return rule, ok
}

// Has reports whether a rule is registered under the canonical name. It
// allows rule configuration to be checked without constructing failures.
func (r *Registry) Has(name string) bool {
	_, ok := r.rules[name]
	return ok
}

// Messages exposes the catalog the registry formats failures with.
func (r *Registry) Messages() Catalog {
	return r.msgs
}
