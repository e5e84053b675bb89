package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/rules"
)

func TestMinRule(t *testing.T) {
	t.Parallel()
	t.Run("bound is inclusive", func(t *testing.T) {
		assert.NoError(t, validate(t, rules.RuleMin, "age", 10, 10))
		assert.NoError(t, validate(t, rules.RuleMin, "age", 11, 10))
	})

	t.Run("fails below the bound", func(t *testing.T) {
		err := validate(t, rules.RuleMin, "age", 9, 10)
		assert.EqualError(t, err, "Field 'age' must be at least 10.")
	})

	t.Run("works with string values and parameters", func(t *testing.T) {
		assert.NoError(t, validate(t, rules.RuleMin, "age", "10", "10"))
		assert.Error(t, validate(t, rules.RuleMin, "age", "9.5", "10"))
	})

	t.Run("non-numeric parameter fails distinctly", func(t *testing.T) {
		err := validate(t, rules.RuleMin, "age", 10, "abc")
		assert.EqualError(t, err, "Rule 'min' requires a numeric parameter.")
	})

	t.Run("missing parameter fails like a non-numeric one", func(t *testing.T) {
		err := validate(t, rules.RuleMin, "age", 10, nil)
		assert.EqualError(t, err, "Rule 'min' requires a numeric parameter.")
	})

	t.Run("non-numeric value fails with the numeric message", func(t *testing.T) {
		err := validate(t, rules.RuleMin, "age", "abc", 10)
		assert.EqualError(t, err, "Field 'age' must be numeric.")
	})

	t.Run("fractional bounds render without trailing zeros", func(t *testing.T) {
		err := validate(t, rules.RuleMin, "price", 1, 2.5)
		assert.EqualError(t, err, "Field 'price' must be at least 2.5.")
	})
}

func TestMaxRule(t *testing.T) {
	t.Parallel()
	t.Run("bound is inclusive", func(t *testing.T) {
		assert.NoError(t, validate(t, rules.RuleMax, "age", 10, 10))
		assert.NoError(t, validate(t, rules.RuleMax, "age", 9, 10))
	})

	t.Run("fails above the bound", func(t *testing.T) {
		err := validate(t, rules.RuleMax, "age", 11, 10)
		assert.EqualError(t, err, "Field 'age' must be at most 10.")
	})

	t.Run("non-numeric parameter fails distinctly", func(t *testing.T) {
		err := validate(t, rules.RuleMax, "age", 10, "abc")
		assert.EqualError(t, err, "Rule 'max' requires a numeric parameter.")
	})
}

func TestMinLengthRule(t *testing.T) {
	t.Parallel()
	t.Run("counts runes, not bytes", func(t *testing.T) {
		assert.NoError(t, validate(t, rules.RuleMinLength, "name", "héllo", 5))
		assert.Error(t, validate(t, rules.RuleMinLength, "name", "héll", 5))
	})

	t.Run("fails below the length", func(t *testing.T) {
		err := validate(t, rules.RuleMinLength, "name", "ab", "3")
		assert.EqualError(t, err, "Field 'name' must be at least 3 characters long.")
	})

	t.Run("requires an integer parameter", func(t *testing.T) {
		err := validate(t, rules.RuleMinLength, "name", "abc", "x")
		assert.EqualError(t, err, "Length rules require an integer parameter.")
	})

	t.Run("requires a string value", func(t *testing.T) {
		err := validate(t, rules.RuleMinLength, "name", 42, 3)
		assert.EqualError(t, err, "Field 'name' must be a string.")
	})
}

func TestMaxLengthRule(t *testing.T) {
	t.Parallel()
	t.Run("bound is inclusive", func(t *testing.T) {
		assert.NoError(t, validate(t, rules.RuleMaxLength, "name", "abc", 3))
	})

	t.Run("fails above the length", func(t *testing.T) {
		err := validate(t, rules.RuleMaxLength, "name", "abcd", 3)
		require.Error(t, err)
		assert.EqualError(t, err, "Field 'name' must be at most 3 characters long.")
	})
}
