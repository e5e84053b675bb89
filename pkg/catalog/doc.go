// Package catalog maps message keys to user-facing text with positional
// placeholder substitution.
//
// The rule engine never builds message strings itself; it asks a catalog for
// a key with ordered arguments, keeping message content entirely outside
// validation control flow. Templates reference arguments as %{0}, %{1}, …:
//
//	c := catalog.Default()
//	c.Get("field_min_value", "age", 18)
//	// "Field 'age' must be at least 18."
//
// Default ships English templates for every key the engine emits. FromYAML
// and FromFile overlay a flat YAML map over the defaults, so hosts can
// replace some or all messages:
//
//	required_field_missing: "Das Pflichtfeld '%{0}' fehlt."
//
// Unknown keys fall back to the key itself by default and can optionally be
// logged through slog (WithMissingKeyLogging, WithLogger). A constructed
// Catalog is read-only and goroutine-safe.
package catalog
