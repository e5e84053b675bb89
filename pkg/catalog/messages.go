package catalog

// defaultMessages holds the builtin English templates, one per catalog key
// the rule engine emits. Keys missing from a custom catalog fall back to
// these when loaded with an overlay source.
var defaultMessages = map[string]string{
	"rule_must_be_non_empty":                  "Rule must be a non-empty string.",
	"unknown_rule":                            "Unknown rule: %{0}",
	"requiredwithout_cannot_reference_itself": "Rule 'requiredWithout' cannot reference its own field.",
	"only_one_of_fields_can_be_present":       "Only one of '%{0}' and %{1} can be present.",
	"required_field_missing":                  "Required field '%{0}' is missing.",
	"either_field_or_other_must_be_present":   "Either '%{0}' or %{1} must be present.",
	"field_must_be_numeric":                   "Field '%{0}' must be numeric.",
	"min_requires_number":                     "Rule 'min' requires a numeric parameter.",
	"field_min_value":                         "Field '%{0}' must be at least %{1}.",
	"max_requires_number":                     "Rule 'max' requires a numeric parameter.",
	"field_max_value":                         "Field '%{0}' must be at most %{1}.",
	"field_must_be_integer":                   "Field '%{0}' must be an integer.",
	"length_requires_integer":                 "Length rules require an integer parameter.",
	"field_min_length":                        "Field '%{0}' must be at least %{1} characters long.",
	"field_max_length":                        "Field '%{0}' must be at most %{1} characters long.",
	"field_must_be_email":                     "Field '%{0}' must be a valid email address.",
	"field_must_be_uuid":                      "Field '%{0}' must be a valid UUID.",
	"field_must_match_pattern":                "Field '%{0}' has an invalid format.",
	"field_must_be_datetime":                  "Field '%{0}' must be a valid date/time in format '%{1}'.",
}
