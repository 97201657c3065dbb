package fieldval

import "regexp"

var (
	// Permissive email shape: local part, one @, domain with at least one
	// dot and a two-or-more letter TLD, no whitespace anywhere.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[A-Za-z]{2,}$`)

	// Permissive URL shape: http, https, ftp, or ftps scheme followed by a
	// host-like remainder without whitespace.
	urlRegex = regexp.MustCompile(`^(?:https?|ftps?)://[^\s/$.?#][^\s]*$`)
)

func checkEmail(_ Fields, input string, param any) (bool, error) {
	enabled, err := boolParam("email", param)
	if err != nil {
		return false, err
	}
	if !enabled {
		return true, nil
	}
	return emailRegex.MatchString(input), nil
}

func checkURL(_ Fields, input string, param any) (bool, error) {
	enabled, err := boolParam("url", param)
	if err != nil {
		return false, err
	}
	if !enabled {
		return true, nil
	}
	return urlRegex.MatchString(input), nil
}
