package catalog_test

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/catalog"
)

func TestCatalogGet(t *testing.T) {
	t.Parallel()
	t.Run("substitutes positional arguments", func(t *testing.T) {
		c := catalog.New(map[string]string{
			"greeting": "Hello %{0}, you are %{1}.",
		})
		assert.Equal(t, "Hello Alice, you are 30.", c.Get("greeting", "Alice", 30))
	})

	t.Run("arguments may repeat and appear out of order", func(t *testing.T) {
		c := catalog.New(map[string]string{
			"swap": "%{1} before %{0}, %{1} again",
		})
		assert.Equal(t, "b before a, b again", c.Get("swap", "a", "b"))
	})

	t.Run("placeholders without arguments stay intact", func(t *testing.T) {
		c := catalog.New(map[string]string{
			"partial": "got %{0} and %{1}",
		})
		assert.Equal(t, "got x and %{1}", c.Get("partial", "x"))
		assert.Equal(t, "got %{0} and %{1}", c.Get("partial"))
	})

	t.Run("unknown keys fall back to the key", func(t *testing.T) {
		c := catalog.New(nil)
		assert.Equal(t, "missing_key", c.Get("missing_key", "unused"))
	})

	t.Run("fallback can be disabled", func(t *testing.T) {
		c := catalog.New(nil, catalog.WithFallbackToKey(false))
		assert.Empty(t, c.Get("missing_key"))
	})

	t.Run("missing keys can be logged", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		c := catalog.New(nil,
			catalog.WithLogger(logger),
			catalog.WithMissingKeyLogging(true),
		)

		c.Get("missing_key")
		assert.Contains(t, buf.String(), "missing_key")
	})

	t.Run("copies the message map", func(t *testing.T) {
		src := map[string]string{"k": "v"}
		c := catalog.New(src)
		src["k"] = "changed"
		assert.Equal(t, "v", c.Get("k"))
	})
}

func TestCatalogDefault(t *testing.T) {
	t.Parallel()
	c := catalog.Default()

	t.Run("covers every engine key", func(t *testing.T) {
		for _, key := range []string{
			"rule_must_be_non_empty",
			"unknown_rule",
			"requiredwithout_cannot_reference_itself",
			"only_one_of_fields_can_be_present",
			"required_field_missing",
			"either_field_or_other_must_be_present",
			"field_must_be_numeric",
			"min_requires_number",
			"field_min_value",
		} {
			assert.True(t, c.Has(key), "key %q missing", key)
		}
	})

	t.Run("formats engine messages", func(t *testing.T) {
		assert.Equal(t, "Unknown rule: bogus", c.Get("unknown_rule", "bogus"))
		assert.Equal(t, "Required field 'age' is missing.", c.Get("required_field_missing", "age"))
		assert.Equal(t, "Field 'age' must be at least 18.", c.Get("field_min_value", "age", 18))
	})
}

func TestFromYAML(t *testing.T) {
	t.Parallel()
	t.Run("overlays the defaults", func(t *testing.T) {
		c, err := catalog.FromYAML([]byte("required_field_missing: \"Pflichtfeld '%{0}' fehlt.\"\n"))
		require.NoError(t, err)

		assert.Equal(t, "Pflichtfeld 'age' fehlt.", c.Get("required_field_missing", "age"))
		// Untouched keys keep their English defaults.
		assert.Equal(t, "Unknown rule: bogus", c.Get("unknown_rule", "bogus"))
	})

	t.Run("fails on malformed YAML", func(t *testing.T) {
		_, err := catalog.FromYAML([]byte("key: [unclosed"))
		assert.ErrorIs(t, err, catalog.ErrFailedToParseYAML)
	})

	t.Run("fails on empty content", func(t *testing.T) {
		_, err := catalog.FromYAML([]byte(""))
		assert.ErrorIs(t, err, catalog.ErrEmptyCatalog)
	})
}

func TestFromFile(t *testing.T) {
	t.Parallel()
	t.Run("loads a YAML file", func(t *testing.T) {
		path := t.TempDir() + "/messages.yml"
		content := "field_must_be_numeric: \"'%{0}' is not a number\"\n"
		require.NoError(t, writeFile(path, content))

		c, err := catalog.FromFile(path)
		require.NoError(t, err)
		assert.Equal(t, "'age' is not a number", c.Get("field_must_be_numeric", "age"))
	})

	t.Run("fails on unreadable files", func(t *testing.T) {
		_, err := catalog.FromFile(t.TempDir() + "/nope.yml")
		assert.ErrorIs(t, err, catalog.ErrFailedToReadFile)
	})
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}

func BenchmarkCatalogGet(b *testing.B) {
	c := catalog.Default()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = c.Get("field_min_value", "age", 18)
	}
}
