// Package rulekit validates field-level input data against declarative rule
// strings and produces precise, user-facing error messages.
//
// # Usage
//
//	v := rulekit.New()
//	err := v.Validate(dataset.MapAccessor{
//	    "email": "alice@example.com",
//	    "age":   17,
//	}, rulekit.RuleSet{
//	    "email": {"required", "email"},
//	    "age":   {"required|integer|min:18"},
//	})
//	if verrs := rulekit.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Get("age") -> ["Field 'age' must be at least 18."]
//	}
//
// Rules follow the "name" / "name:parameter" grammar, optionally
// pipe-separated. The required and requiredWithout rules resolve field
// presence and mutual exclusion before any value check runs; absent optional
// fields skip their remaining rules entirely. Evaluation is fail-fast per
// field, and failures across fields aggregate into a ValidationErrors
// collection.
//
// The engine itself lives in pkg/rules, message formatting in pkg/catalog,
// and dataset access in pkg/dataset; this package only orchestrates them.
// Configuration defects in the rule declarations (empty rule strings, a
// requiredWithout referencing its own field) surface as ordinary errors
// distinct from ValidationErrors, so they are caught in setup and testing
// rather than mistaken for bad user input.
package rulekit
