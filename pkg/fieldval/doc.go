// Package fieldval is a field-based input validation engine. Callers register
// named string input values and, independently, per-field rule sets (rule
// name to parameter), then call Validate to run every applicable rule against
// every field and receive a pass/fail report shaped exactly like the rule
// store: field name to rule name to bool.
//
// The engine reports booleans, not messages: deciding what to tell a user
// belongs to the embedding application.
//
// # Architecture
//
// A Validator holds three independent stores: the input store (field name to
// string value), the rule store (field name to RuleSet), and the custom
// method table. Built-in rules live in a static table, one checker per rule
// name, split across the *_rules.go files by family (string, numeric,
// comparable, pattern, format, date). Custom checkers implement the Method
// interface and are registered at runtime; built-in names are reserved and
// registering over one fails with an IllegalNameError.
//
// Validate iterates fields in rule insertion order and hands every checker,
// built-in and custom alike, a Fields snapshot of the input store. That
// snapshot is the execution context for cross-field rules such as equalTo,
// so there is no package-level state and concurrent runs on separate
// validators do not interfere.
//
// # Usage
//
//	v := fieldval.New()
//	v.AddInput(map[string]string{
//	    "name": "Joe",
//	    "age":  "39",
//	})
//	err := v.AddRules(map[string]any{
//	    "name": fieldval.RuleSet{"required": true, "not": "Homer"},
//	    "age":  fieldval.RuleSet{"digits": true, "min": 15},
//	})
//	if err != nil {
//	    // malformed rule map
//	}
//	result, err := v.Validate()
//	if err != nil {
//	    // missing input field, unknown rule name, bad parameter type
//	}
//	if !result.Valid() {
//	    // result["age"]["min"] etc.
//	}
//
// Rule sets may also be authored as YAML or JSON documents and loaded with
// AddRulesYAML / AddRulesJSON; input payloads with AddInputJSON.
//
// # Error Handling
//
// All failures are returned synchronously and typed: UnknownKeyError for a
// missing field or key in any store, UnknownMethodError for an unresolvable
// rule name, InvalidTypeError for malformed rule maps or parameters of the
// wrong type, IllegalNameError for a built-in name collision. The first
// error aborts a run; no partial result is ever returned alongside an error.
//
// # Concurrency
//
// Validate does not mutate the validator, so concurrent runs on one instance
// are safe as long as the stores are not being mutated at the same time.
// Store mutation is not synchronized.
package fieldval
