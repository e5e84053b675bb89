package rules_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rulekit/pkg/rules"
)

func TestEmailRule(t *testing.T) {
	t.Parallel()
	t.Run("passes for plain addresses", func(t *testing.T) {
		assert.NoError(t, validate(t, rules.RuleEmail, "email", "alice@example.com", nil))
		assert.NoError(t, validate(t, rules.RuleEmail, "email", "a.b+tag@sub.example.org", nil))
	})

	t.Run("fails for malformed addresses", func(t *testing.T) {
		err := validate(t, rules.RuleEmail, "email", "not-an-email", nil)
		assert.EqualError(t, err, "Field 'email' must be a valid email address.")
		assert.Error(t, validate(t, rules.RuleEmail, "email", "Alice <alice@example.com>", nil))
		assert.Error(t, validate(t, rules.RuleEmail, "email", "", nil))
		assert.Error(t, validate(t, rules.RuleEmail, "email", 42, nil))
	})
}

func TestUUIDRule(t *testing.T) {
	t.Parallel()
	t.Run("passes for standard UUIDs", func(t *testing.T) {
		assert.NoError(t, validate(t, rules.RuleUUID, "id", uuid.NewString(), nil))
		assert.NoError(t, validate(t, rules.RuleUUID, "id", "550e8400-e29b-41d4-a716-446655440000", nil))
	})

	t.Run("fails for everything else", func(t *testing.T) {
		err := validate(t, rules.RuleUUID, "id", "550e8400", nil)
		assert.EqualError(t, err, "Field 'id' must be a valid UUID.")
		assert.Error(t, validate(t, rules.RuleUUID, "id", "550e8400e29b41d4a716446655440000", nil))
		assert.Error(t, validate(t, rules.RuleUUID, "id", 42, nil))
	})
}

func TestRegexRule(t *testing.T) {
	t.Parallel()
	t.Run("matches the pattern", func(t *testing.T) {
		assert.NoError(t, validate(t, rules.RuleRegex, "code", "AB-12", `^[A-Z]{2}-\d{2}$`))
	})

	t.Run("fails on mismatch", func(t *testing.T) {
		err := validate(t, rules.RuleRegex, "code", "ab-12", `^[A-Z]{2}-\d{2}$`)
		assert.EqualError(t, err, "Field 'code' has an invalid format.")
		assert.Error(t, validate(t, rules.RuleRegex, "code", 42, `^\d+$`))
	})

	t.Run("missing pattern is a configuration error", func(t *testing.T) {
		err := validate(t, rules.RuleRegex, "code", "x", nil)
		assert.ErrorIs(t, err, rules.ErrMissingParameter)
	})

	t.Run("uncompilable pattern is a configuration error", func(t *testing.T) {
		err := validate(t, rules.RuleRegex, "code", "x", "(")
		assert.ErrorIs(t, err, rules.ErrInvalidPattern)
	})
}

func TestDatetimeRule(t *testing.T) {
	t.Parallel()
	t.Run("defaults to RFC 3339", func(t *testing.T) {
		assert.NoError(t, validate(t, rules.RuleDatetime, "at", "2026-08-24T10:00:00Z", nil))
		assert.Error(t, validate(t, rules.RuleDatetime, "at", "2026-08-24", nil))
	})

	t.Run("accepts a custom layout", func(t *testing.T) {
		assert.NoError(t, validate(t, rules.RuleDatetime, "at", "2026-08-24", "2006-01-02"))
		err := validate(t, rules.RuleDatetime, "at", "24.08.2026", "2006-01-02")
		assert.EqualError(t, err, "Field 'at' must be a valid date/time in format '2006-01-02'.")
	})

	t.Run("requires a string value", func(t *testing.T) {
		assert.Error(t, validate(t, rules.RuleDatetime, "at", 42, nil))
	})
}
