package fieldval

import (
	"fmt"
	"slices"
)

// RuleSet maps rule names to their parameters for a single field. Parameter
// types vary per rule: booleans for switches like required, numbers for
// bounds, strings for patterns and peer field names, string sets for
// exclusion lists.
type RuleSet = map[string]any

// Result holds the outcome of a validation run, shaped exactly like the rule
// store at the time of the call: field name to rule name to pass/fail.
type Result map[string]map[string]bool

// Valid reports whether every rule on every field passed.
func (r Result) Valid() bool {
	for _, checks := range r {
		for _, ok := range checks {
			if !ok {
				return false
			}
		}
	}
	return true
}

// Fields is the read-only snapshot of the input store handed to every checker
// during a validation run. It is how cross-field rules such as equalTo, and
// custom methods that need sibling values, reach the rest of the input without
// any shared global state.
type Fields map[string]string

// Value returns the named field's input value or an UnknownKeyError if the
// field is absent.
func (f Fields) Value(name string) (string, error) {
	value, ok := f[name]
	if !ok {
		return "", &UnknownKeyError{Store: StoreInput, Key: name}
	}
	return value, nil
}

// Has reports whether the named field is present in the snapshot.
func (f Fields) Has(name string) bool {
	_, ok := f[name]
	return ok
}

// Validator is the field validation engine. It holds three independent stores:
// input values, per-field rule sets, and registered custom methods. A zero
// Validator is not usable; construct with New.
//
// The stores may be mutated freely between runs. Validate itself does not
// mutate the validator, so concurrent Validate calls are safe as long as no
// goroutine is mutating the stores at the same time.
type Validator struct {
	input      map[string]string
	rules      map[string]RuleSet
	fieldOrder []string
	ruleOrder  map[string][]string
	custom     map[string]Method
	origins    map[string]Origin
}

// New returns a Validator with all built-in rules registered and empty
// input, rule, and custom method stores.
func New() *Validator {
	v := &Validator{
		input:     make(map[string]string),
		rules:     make(map[string]RuleSet),
		ruleOrder: make(map[string][]string),
		custom:    make(map[string]Method),
		origins:   make(map[string]Origin, len(builtinMethods)),
	}
	for name := range builtinMethods {
		v.origins[name] = OriginBuiltIn
	}
	return v
}

// AddInput merges the given field values into the input store, overwriting
// values for fields that are already present.
func (v *Validator) AddInput(input map[string]string) {
	for field, value := range input {
		v.input[field] = value
	}
}

// Input returns the stored value for a field or an UnknownKeyError if the
// field is absent.
func (v *Validator) Input(field string) (string, error) {
	value, ok := v.input[field]
	if !ok {
		return "", &UnknownKeyError{Store: StoreInput, Key: field}
	}
	return value, nil
}

// Inputs returns a copy of the full input store.
func (v *Validator) Inputs() map[string]string {
	out := make(map[string]string, len(v.input))
	for field, value := range v.input {
		out[field] = value
	}
	return out
}

// RemoveInput deletes one field from the input store. Unknown fields are
// ignored.
func (v *Validator) RemoveInput(field string) {
	delete(v.input, field)
}

// ClearInput drops the entire input store.
func (v *Validator) ClearInput() {
	clear(v.input)
}

// AddRules merges the given rule sets into the rule store. Each field's value
// must itself be a rule map (RuleSet); anything else fails with an
// InvalidTypeError and leaves the store untouched. Rules accumulate across
// calls: existing rule names for a field are overwritten, new ones are added.
//
// New fields, and new rule names within a field, are appended in sorted order
// so that repeated runs iterate deterministically.
func (v *Validator) AddRules(rules map[string]any) error {
	sets := make(map[string]RuleSet, len(rules))
	for field, raw := range rules {
		set, ok := raw.(RuleSet)
		if !ok {
			return &InvalidTypeError{
				Reason: fmt.Sprintf("rules for field %q must be a map of rule names to parameters, got %T", field, raw),
			}
		}
		sets[field] = set
	}

	fields := make([]string, 0, len(sets))
	for field := range sets {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	for _, field := range fields {
		set := sets[field]
		if _, ok := v.rules[field]; !ok {
			v.rules[field] = make(RuleSet, len(set))
			v.fieldOrder = append(v.fieldOrder, field)
		}
		names := make([]string, 0, len(set))
		for name := range set {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			if _, ok := v.rules[field][name]; !ok {
				v.ruleOrder[field] = append(v.ruleOrder[field], name)
			}
			v.rules[field][name] = set[name]
		}
	}
	return nil
}

// Rules returns a copy of one field's rule set or an UnknownKeyError if the
// field has no rules.
func (v *Validator) Rules(field string) (RuleSet, error) {
	set, ok := v.rules[field]
	if !ok {
		return nil, &UnknownKeyError{Store: StoreRules, Key: field}
	}
	out := make(RuleSet, len(set))
	for name, param := range set {
		out[name] = param
	}
	return out, nil
}

// AllRules returns a copy of the full nested rule store.
func (v *Validator) AllRules() map[string]RuleSet {
	out := make(map[string]RuleSet, len(v.rules))
	for field, set := range v.rules {
		cp := make(RuleSet, len(set))
		for name, param := range set {
			cp[name] = param
		}
		out[field] = cp
	}
	return out
}

// RemoveRules deletes all rules for one field. Unknown fields are ignored.
func (v *Validator) RemoveRules(field string) {
	if _, ok := v.rules[field]; !ok {
		return
	}
	delete(v.rules, field)
	delete(v.ruleOrder, field)
	v.fieldOrder = slices.DeleteFunc(v.fieldOrder, func(f string) bool { return f == field })
}

// ClearRules drops the entire rule store.
func (v *Validator) ClearRules() {
	clear(v.rules)
	clear(v.ruleOrder)
	v.fieldOrder = v.fieldOrder[:0]
}

// Validate runs every rule in the rule store against the corresponding input
// value and returns a Result with exactly the rule store's shape.
//
// A ruled field with no input value fails with an UnknownKeyError; the check
// is lazy, at validation time, not when rules are added. A rule name that
// resolves to neither a built-in nor a custom method fails with an
// UnknownMethodError. The first error aborts the run: no partial result is
// ever returned alongside an error.
func (v *Validator) Validate() (Result, error) {
	fields := make(Fields, len(v.input))
	for field, value := range v.input {
		fields[field] = value
	}

	result := make(Result, len(v.fieldOrder))
	for _, field := range v.fieldOrder {
		value, ok := v.input[field]
		if !ok {
			return nil, &UnknownKeyError{Store: StoreInput, Key: field}
		}

		checks := make(map[string]bool, len(v.ruleOrder[field]))
		for _, name := range v.ruleOrder[field] {
			param := v.rules[field][name]

			var (
				passed bool
				err    error
			)
			switch v.origins[name] {
			case OriginBuiltIn:
				passed, err = builtinMethods[name](fields, value, param)
			case OriginCustom:
				passed, err = v.custom[name].Validate(fields, value, param)
			default:
				return nil, &UnknownMethodError{Method: name}
			}
			if err != nil {
				return nil, err
			}
			checks[name] = passed
		}
		result[field] = checks
	}
	return result, nil
}
