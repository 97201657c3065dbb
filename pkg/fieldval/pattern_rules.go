package fieldval

import (
	"fmt"
	"regexp"
)

// checkPattern matches with search semantics: the expression matches anywhere
// in the input unless it anchors itself. The parameter may be a pattern
// string, compiled on each call, or a precompiled *regexp.Regexp.
func checkPattern(_ Fields, input string, param any) (bool, error) {
	switch p := param.(type) {
	case *regexp.Regexp:
		return p.MatchString(input), nil
	case string:
		re, err := regexp.Compile(p)
		if err != nil {
			return false, &InvalidTypeError{Rule: "pattern", Reason: err.Error()}
		}
		return re.MatchString(input), nil
	default:
		return false, &InvalidTypeError{
			Rule:   "pattern",
			Reason: fmt.Sprintf("want pattern string or *regexp.Regexp, got %T", param),
		}
	}
}
