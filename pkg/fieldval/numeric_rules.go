package fieldval

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// Whole-string ASCII digits, at least one.
	digitsRegex = regexp.MustCompile(`^[0-9]+$`)

	// Strict numeral: optional sign, optional decimal point, optional
	// exponent, no trailing garbage.
	numberRegex = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

	// Leading numeric prefix, for loose coercion.
	numberPrefixRegex = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?`)
)

// looseNumber coerces an input string to a float the way loose numeric-string
// parsing does: leading whitespace is skipped, the longest numeric prefix
// (including exponent notation) is parsed, and anything without one counts
// as zero.
func looseNumber(s string) float64 {
	s = strings.TrimLeft(s, " \t\n\r")
	prefix := numberPrefixRegex.FindString(s)
	if prefix == "" {
		return 0
	}
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0
	}
	return f
}

func checkMin(_ Fields, input string, param any) (bool, error) {
	min, err := floatParam("min", param)
	if err != nil {
		return false, err
	}
	return looseNumber(input) >= min, nil
}

func checkMax(_ Fields, input string, param any) (bool, error) {
	max, err := floatParam("max", param)
	if err != nil {
		return false, err
	}
	return looseNumber(input) <= max, nil
}

func checkDigits(_ Fields, input string, param any) (bool, error) {
	enabled, err := boolParam("digits", param)
	if err != nil {
		return false, err
	}
	if !enabled {
		return true, nil
	}
	return digitsRegex.MatchString(input), nil
}

func checkNumber(_ Fields, input string, param any) (bool, error) {
	enabled, err := boolParam("number", param)
	if err != nil {
		return false, err
	}
	if !enabled {
		return true, nil
	}
	return numberRegex.MatchString(input), nil
}
