package fieldval

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// charCount counts user-visible characters, not bytes. Input is normalized to
// NFC first so a decomposed "u" + combining diaeresis counts as one character.
func charCount(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}

func checkRequired(_ Fields, input string, param any) (bool, error) {
	enabled, err := boolParam("required", param)
	if err != nil {
		return false, err
	}
	if !enabled {
		return true, nil
	}
	return input != "", nil
}

func checkMinLength(_ Fields, input string, param any) (bool, error) {
	min, err := intParam("minlength", param)
	if err != nil {
		return false, err
	}
	return charCount(input) >= min, nil
}

func checkMaxLength(_ Fields, input string, param any) (bool, error) {
	max, err := intParam("maxlength", param)
	if err != nil {
		return false, err
	}
	return charCount(input) <= max, nil
}
