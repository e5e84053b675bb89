package rules

import "errors"

// Configuration errors indicate a defect in the rule declarations themselves,
// not in the data under validation. They surface at parse or construction
// time so they are caught during setup and testing rather than per request.
var (
	// ErrEmptyRule is returned when a rule string is empty or whitespace.
	ErrEmptyRule = errors.New("rule must be a non-empty string")

	// ErrEmptyRuleList is returned when a rule list yields no rules at all.
	ErrEmptyRuleList = errors.New("rule list contains no rules")

	// ErrSelfReference is returned when a field declares requiredWithout
	// pointing at itself.
	ErrSelfReference = errors.New("requiredWithout cannot reference its own field")

	// ErrMissingParameter is returned when a rule that needs a parameter is
	// declared without one.
	ErrMissingParameter = errors.New("rule requires a parameter")

	// ErrInvalidPattern is returned when a regex rule carries a pattern that
	// does not compile.
	ErrInvalidPattern = errors.New("regex pattern does not compile")
)
