package fieldval

import (
	"errors"
	"fmt"
)

// Store names used in UnknownKeyError to identify which store a failed lookup hit.
const (
	StoreInput   = "input"
	StoreRules   = "rules"
	StoreMethods = "custom methods"
)

// UnknownKeyError indicates a lookup for a key that is not present in one of the
// validator's stores: an input field, a field's rule set, or a custom method name.
type UnknownKeyError struct {
	Store string
	Key   string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("no entry %q in %s store", e.Key, e.Store)
}

// UnknownMethodError indicates a rule name that resolves to neither a built-in
// nor a registered custom method at dispatch time.
type UnknownMethodError struct {
	Method string
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("unknown validation method %q", e.Method)
}

// IllegalNameError indicates an attempt to register a custom method under a
// name reserved by a built-in rule.
type IllegalNameError struct {
	Name string
}

func (e *IllegalNameError) Error() string {
	return fmt.Sprintf("method name %q collides with a built-in rule", e.Name)
}

// InvalidTypeError indicates a malformed rule map or a rule parameter of the
// wrong type. Rule is empty when the rule-map shape itself is at fault.
type InvalidTypeError struct {
	Rule   string
	Reason string
}

func (e *InvalidTypeError) Error() string {
	if e.Rule == "" {
		return "invalid rules: " + e.Reason
	}
	return fmt.Sprintf("invalid parameter for rule %q: %s", e.Rule, e.Reason)
}

func IsUnknownKeyError(err error) bool {
	var e *UnknownKeyError
	return errors.As(err, &e)
}

func IsUnknownMethodError(err error) bool {
	var e *UnknownMethodError
	return errors.As(err, &e)
}

func IsIllegalNameError(err error) bool {
	var e *IllegalNameError
	return errors.As(err, &e)
}

func IsInvalidTypeError(err error) bool {
	var e *InvalidTypeError
	return errors.As(err, &e)
}
