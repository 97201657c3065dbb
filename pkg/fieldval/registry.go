package fieldval

// Origin tags a registered method name as built-in or caller-supplied.
type Origin string

const (
	OriginBuiltIn Origin = "built-in"
	OriginCustom  Origin = "custom"
)

// Method is a named validation checker. Built-in rules never go through this
// interface; it exists for caller-supplied methods registered at runtime.
//
// Validate receives the Fields snapshot of the current run so cross-field
// methods can read sibling values, the input value under test, and the rule
// parameter as declared in the rule store.
type Method interface {
	Name() string
	Validate(fields Fields, input string, param any) (bool, error)
}

// CheckFunc is the signature shared by built-in checkers and MethodFunc
// adapters.
type CheckFunc func(fields Fields, input string, param any) (bool, error)

type methodFunc struct {
	name string
	fn   CheckFunc
}

func (m methodFunc) Name() string { return m.name }

func (m methodFunc) Validate(fields Fields, input string, param any) (bool, error) {
	return m.fn(fields, input, param)
}

// MethodFunc adapts a named function to the Method interface.
func MethodFunc(name string, fn CheckFunc) Method {
	return methodFunc{name: name, fn: fn}
}

// builtinMethods is the static rule table. Built-in discovery is deliberately
// a compile-time table rather than reflection so the rule set is auditable in
// one place.
var builtinMethods = map[string]CheckFunc{
	"required":  checkRequired,
	"minlength": checkMinLength,
	"maxlength": checkMaxLength,
	"min":       checkMin,
	"max":       checkMax,
	"digits":    checkDigits,
	"number":    checkNumber,
	"pattern":   checkPattern,
	"equalTo":   checkEqualTo,
	"not":       checkNot,
	"email":     checkEmail,
	"url":       checkURL,
	"date":      checkDate,
	"mindate":   checkMinDate,
	"maxdate":   checkMaxDate,
}

// RegisterMethod registers a custom validation method under its own name.
// Names of built-in rules are reserved: colliding with one fails with an
// IllegalNameError. Registering over a previously registered custom method of
// the same name replaces it.
func (v *Validator) RegisterMethod(m Method) error {
	name := m.Name()
	if v.origins[name] == OriginBuiltIn {
		return &IllegalNameError{Name: name}
	}
	v.custom[name] = m
	v.origins[name] = OriginCustom
	return nil
}

// Method returns the registered custom method for a name or an
// UnknownKeyError if no custom method is registered under it. Built-in rules
// are not reachable this way.
func (v *Validator) Method(name string) (Method, error) {
	m, ok := v.custom[name]
	if !ok {
		return nil, &UnknownKeyError{Store: StoreMethods, Key: name}
	}
	return m, nil
}

// Methods returns a copy of the full custom method table.
func (v *Validator) Methods() map[string]Method {
	out := make(map[string]Method, len(v.custom))
	for name, m := range v.custom {
		out[name] = m
	}
	return out
}

// RemoveMethod removes one custom method and frees its name, so a later
// RegisterMethod under the same name starts fresh. Unknown names are ignored;
// built-in entries are never removed.
func (v *Validator) RemoveMethod(name string) {
	if _, ok := v.custom[name]; !ok {
		return
	}
	delete(v.custom, name)
	delete(v.origins, name)
}

// ClearMethods removes every custom method and frees their names.
func (v *Validator) ClearMethods() {
	for name := range v.custom {
		delete(v.origins, name)
	}
	clear(v.custom)
}

// ValidationMethods returns a snapshot of the full method registry, mapping
// every known rule name to its origin.
func (v *Validator) ValidationMethods() map[string]Origin {
	out := make(map[string]Origin, len(v.origins))
	for name, origin := range v.origins {
		out[name] = origin
	}
	return out
}
