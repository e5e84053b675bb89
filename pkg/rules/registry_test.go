package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/dataset"
	"github.com/dmitrymomot/rulekit/pkg/rules"
)

func TestRegistry(t *testing.T) {
	t.Parallel()
	t.Run("registers the builtin rules", func(t *testing.T) {
		reg := rules.NewRegistry(nil)
		for _, name := range []string{
			rules.RuleRequired,
			rules.RuleRequiredWithout,
			rules.RuleString,
			rules.RuleNumeric,
			rules.RuleInteger,
			rules.RuleMin,
			rules.RuleMax,
			rules.RuleMinLength,
			rules.RuleMaxLength,
			rules.RuleEmail,
			rules.RuleUUID,
			rules.RuleRegex,
			rules.RuleDatetime,
		} {
			assert.True(t, reg.Has(name), "builtin %q missing", name)
		}
	})

	t.Run("reports absence without failing", func(t *testing.T) {
		reg := rules.NewRegistry(nil)
		rule, ok := reg.Get("bogus")
		assert.False(t, ok)
		assert.Nil(t, rule)
	})

	t.Run("lookups are case-sensitive on canonical names", func(t *testing.T) {
		reg := rules.NewRegistry(nil)
		assert.False(t, reg.Has("Min"))
		assert.True(t, reg.Has("min"))
	})

	t.Run("register canonicalizes the name", func(t *testing.T) {
		reg := rules.NewRegistry(nil)
		reg.Register("  Custom ", stubRule{})
		assert.True(t, reg.Has("custom"))
	})

	t.Run("register replaces an existing binding", func(t *testing.T) {
		reg := rules.NewRegistry(nil)
		reg.Register(rules.RuleMin, stubRule{})
		rule, ok := reg.Get(rules.RuleMin)
		require.True(t, ok)
		assert.IsType(t, stubRule{}, rule)
	})

	t.Run("ignores nil rules and empty names", func(t *testing.T) {
		reg := rules.NewRegistry(nil)
		reg.Register("nilrule", nil)
		reg.Register("  ", stubRule{})
		assert.False(t, reg.Has("nilrule"))
	})
}

// stubRule passes everything; used to exercise registration.
type stubRule struct{}

func (stubRule) Validate(_ dataset.Key, _ any, _ any) error { return nil }
