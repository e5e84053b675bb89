// Package rules implements the declarative rule engine at the heart of
// rulekit: rule-string parsing, a name-keyed rule registry, the builtin rule
// implementations, and the requirement engine that resolves field presence
// before any per-value check runs.
//
// # Architecture
//
// A rule string such as "min:10" parses into a Spec (ParseSpec,
// ParseSpecList). Specs bind to a field as MetaRules, which dispatch by name
// through a Registry to Rule implementations sharing one contract:
//
//	Validate(field dataset.Key, value any, param any) error
//
// The required and requiredWithout rules are not value checks. A
// RequirementEngine derives RequirementConstraints from a field's MetaRules
// and resolves presence against the dataset first; when resolution fails the
// field's remaining rules never run, and when an absent field turns out to be
// acceptable the engine reports that further validation should be skipped.
// FilterRequirementRules removes requirement rules from the list handed to
// per-value dispatch.
//
// # Error Taxonomy
//
// Configuration errors (empty rule strings, a requiredWithout without a
// parameter or pointing at its own field, bad regex patterns) are sentinel
// errors raised at parse or construction time; they mean the declarations are
// defective. Everything user-facing is a *ValidationError carrying the
// field, the rule, a Kind, and a message formatted through the Catalog
// interface. Callers may branch on Kind or the sentinels, never on message
// text.
//
// # Concurrency
//
// A Registry is read-only once populated and safe to share across concurrent
// validation passes. MetaRules and RequirementEngines are cheap per-pass
// objects; build fresh ones per pass instead of sharing them.
package rules
