package rules

import (
	"strconv"

	"github.com/dmitrymomot/rulekit/pkg/dataset"
)

// Rule validates one (field, value, parameter) triple. Implementations are
// stateless apart from references to the shared message catalog and type
// checker, so a single instance is safe to use across concurrent validation
// passes. A nil return means the value passed; failures are returned as
// *ValidationError.
type Rule interface {
	Validate(field dataset.Key, value any, param any) error
}

// Catalog resolves a message key and its positional arguments to user-facing
// text. The core never inspects the returned string; message content lives
// entirely outside its control flow.
type Catalog interface {
	Get(key string, args ...any) string
}

// Catalog keys emitted by this package, with their positional arguments.
const (
	msgUnknownRule         = "unknown_rule"                           // %{0} = rule name
	msgOnlyOneOfFields     = "only_one_of_fields_can_be_present"      // %{0} = field, %{1} = formatted list
	msgRequiredMissing     = "required_field_missing"                 // %{0} = field
	msgEitherFieldOrOther  = "either_field_or_other_must_be_present"  // %{0} = field, %{1} = formatted list
	msgMustBeNumeric       = "field_must_be_numeric"                  // %{0} = field
	msgMinRequiresNumber   = "min_requires_number"                    // no args
	msgMinValue            = "field_min_value"                        // %{0} = field, %{1} = minimum
	msgMaxRequiresNumber   = "max_requires_number"                    // no args
	msgMaxValue            = "field_max_value"                        // %{0} = field, %{1} = maximum
	msgMustBeInteger       = "field_must_be_integer"                  // %{0} = field
	msgLengthRequiresInt   = "length_requires_integer"                // no args
	msgMinLength           = "field_min_length"                       // %{0} = field, %{1} = length
	msgMaxLength           = "field_max_length"                       // %{0} = field, %{1} = length
	msgMustBeEmail         = "field_must_be_email"                    // %{0} = field
	msgMustBeUUID          = "field_must_be_uuid"                     // %{0} = field
	msgMustMatchPattern    = "field_must_match_pattern"               // %{0} = field
	msgMustBeDatetime      = "field_must_be_datetime"                 // %{0} = field, %{1} = layout
)

// keyCatalog is the fallback used when no catalog is supplied: every lookup
// resolves to the key itself, which keeps failures identifiable without a
// message source.
type keyCatalog struct{}

func (keyCatalog) Get(key string, _ ...any) string { return key }

// TypeChecker reports how raw input values map onto the primitive shapes the
// builtin rules care about. The indirection exists so type predicates can be
// substituted in tests; implementations carry no other state.
type TypeChecker interface {
	// IsString reports whether the value is a string.
	IsString(v any) bool

	// Numeric returns the value as a float64 when it is numeric. Numeric
	// strings count as numeric.
	Numeric(v any) (float64, bool)

	// Integer returns the value as an int64 when it is an integer, an
	// integral float, or a string of digits.
	Integer(v any) (int64, bool)
}

// nativeChecker is the default TypeChecker backed by Go type switches.
type nativeChecker struct{}

func (nativeChecker) IsString(v any) bool {
	_, ok := v.(string)
	return ok
}

func (nativeChecker) Numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}

func (c nativeChecker) Integer(v any) (int64, bool) {
	switch n := v.(type) {
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil
	case float32, float64:
		f, _ := c.Numeric(v)
		i := int64(f)
		return i, float64(i) == f
	}
	f, ok := c.Numeric(v)
	if !ok {
		return 0, false
	}
	return int64(f), true
}

// formatNumber renders a float for user-facing messages without a trailing
// fractional part for integral values.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
