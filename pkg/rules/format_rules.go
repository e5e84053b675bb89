package rules

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/rulekit/pkg/dataset"
)

// EmailRule validates that a string value is a plain RFC 5322 address
// without a display name.
type EmailRule struct {
	msgs   Catalog
	checks TypeChecker
}

// Validate implements the Rule interface.
func (r EmailRule) Validate(field dataset.Key, value any, _ any) error {
	fail := &ValidationError{
		Field:   field.String(),
		Rule:    RuleEmail,
		Kind:    KindValue,
		Message: r.msgs.Get(msgMustBeEmail, field),
	}

	s, ok := value.(string)
	if !ok {
		return fail
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return fail
	}
	return nil
}

// UUIDRule validates that a string value is a standard UUID. Length and
// hyphen positions are checked before parsing to reject garbage cheaply.
type UUIDRule struct {
	msgs   Catalog
	checks TypeChecker
}

// Validate implements the Rule interface.
func (r UUIDRule) Validate(field dataset.Key, value any, _ any) error {
	fail := &ValidationError{
		Field:   field.String(),
		Rule:    RuleUUID,
		Kind:    KindValue,
		Message: r.msgs.Get(msgMustBeUUID, field),
	}

	s, ok := value.(string)
	if !ok || len(s) != 36 {
		return fail
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return fail
	}
	if _, err := uuid.Parse(s); err != nil {
		return fail
	}
	return nil
}

// RegexRule validates that a string value matches the parameter pattern.
// A missing or uncompilable pattern is a configuration error, not a value
// failure.
type RegexRule struct {
	msgs   Catalog
	checks TypeChecker
}

// Validate implements the Rule interface.
func (r RegexRule) Validate(field dataset.Key, value any, param any) error {
	pattern, ok := param.(string)
	if !ok || pattern == "" {
		return fmt.Errorf("%w: regex on field '%s'", ErrMissingParameter, field)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
	}

	s, ok := value.(string)
	if !ok || !re.MatchString(s) {
		return &ValidationError{
			Field:   field.String(),
			Rule:    RuleRegex,
			Kind:    KindValue,
			Message: r.msgs.Get(msgMustMatchPattern, field),
		}
	}
	return nil
}

// DatetimeRule validates that a string value parses with the Go time layout
// given as parameter. Without a parameter the layout defaults to RFC 3339.
type DatetimeRule struct {
	msgs   Catalog
	checks TypeChecker
}

// Validate implements the Rule interface.
func (r DatetimeRule) Validate(field dataset.Key, value any, param any) error {
	layout := time.RFC3339
	if p, ok := param.(string); ok && strings.TrimSpace(p) != "" {
		layout = p
	}

	fail := &ValidationError{
		Field:   field.String(),
		Rule:    RuleDatetime,
		Kind:    KindValue,
		Message: r.msgs.Get(msgMustBeDatetime, field, layout),
	}

	s, ok := value.(string)
	if !ok {
		return fail
	}
	if _, err := time.Parse(layout, s); err != nil {
		return fail
	}
	return nil
}
