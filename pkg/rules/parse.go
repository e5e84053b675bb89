package rules

import (
	"fmt"
	"strings"
)

// Spec is one parsed rule specification: a canonical rule name and an
// optional parameter. An empty Param means the rule carries no parameter;
// callers must not distinguish "no parameter" from "empty parameter".
type Spec struct {
	Name  string
	Param string
}

// ParseSpec splits a single rule string such as "min:10" into a Spec.
//
// The substring before the first ':' is the rule name, the substring after it
// the parameter; both are trimmed of surrounding whitespace and the name is
// lower-cased. Without a ':' the whole trimmed string is the name. A name
// that trims to nothing is a configuration error. A parameter that trims to
// nothing normalizes to absent.
func ParseSpec(rule string) (Spec, error) {
	name := rule
	param := ""
	if i := strings.IndexByte(rule, ':'); i >= 0 {
		name = rule[:i]
		param = rule[i+1:]
	}

	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Spec{}, fmt.Errorf("%w: %q", ErrEmptyRule, rule)
	}

	return Spec{Name: name, Param: strings.TrimSpace(param)}, nil
}

// ParseSpecList parses a pipe-separated rule list such as
// "required|min:10|numeric" into its Specs. Empty segments from leading,
// trailing, or doubled pipes are skipped, but a list that yields no specs at
// all is a configuration error.
func ParseSpecList(list string) ([]Spec, error) {
	var specs []Spec
	for _, part := range strings.Split(list, "|") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		spec, err := ParseSpec(part)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyRuleList, list)
	}
	return specs, nil
}
