package fieldval

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// dateLayouts are the candidate layouts for mindate/maxdate values, tried in
// order. Dotted forms are day-first, slash forms month-first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02.01.2006",
	"02.01.06",
}

// dateLayout translates a date-format string into a time layout. Supported
// tokens: Y (4-digit year), y (2-digit year), m/d (zero-padded month/day),
// n/j (unpadded month/day), H/i/s (zero-padded hour/minute/second). Any other
// letter is an error; separators pass through.
func dateLayout(format string) (string, error) {
	var b strings.Builder
	for _, r := range format {
		switch r {
		case 'Y':
			b.WriteString("2006")
		case 'y':
			b.WriteString("06")
		case 'm':
			b.WriteString("01")
		case 'n':
			b.WriteString("1")
		case 'd':
			b.WriteString("02")
		case 'j':
			b.WriteString("2")
		case 'H':
			b.WriteString("15")
		case 'i':
			b.WriteString("04")
		case 's':
			b.WriteString("05")
		default:
			if unicode.IsLetter(r) {
				return "", fmt.Errorf("unsupported format token %q", r)
			}
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}

func parseAnyDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// checkDate requires the input to round-trip exactly through the given
// format: parse, re-format, compare. Re-formatting catches inputs the parser
// tolerates but the format does not produce, such as an unpadded day against
// a zero-padded token; the parser itself rejects numerically invalid
// calendar dates.
func checkDate(_ Fields, input string, param any) (bool, error) {
	format, err := stringParam("date", param)
	if err != nil {
		return false, err
	}
	layout, err := dateLayout(format)
	if err != nil {
		return false, &InvalidTypeError{Rule: "date", Reason: err.Error()}
	}
	t, err := time.Parse(layout, input)
	if err != nil {
		return false, nil
	}
	return t.Format(layout) == input, nil
}

func checkMinDate(_ Fields, input string, param any) (bool, error) {
	raw, err := stringParam("mindate", param)
	if err != nil {
		return false, err
	}
	bound, ok := parseAnyDate(raw)
	if !ok {
		return false, &InvalidTypeError{Rule: "mindate", Reason: fmt.Sprintf("parameter %q is not a recognized date", raw)}
	}
	t, ok := parseAnyDate(input)
	if !ok {
		return false, nil
	}
	return !t.Before(bound), nil
}

func checkMaxDate(_ Fields, input string, param any) (bool, error) {
	raw, err := stringParam("maxdate", param)
	if err != nil {
		return false, err
	}
	bound, ok := parseAnyDate(raw)
	if !ok {
		return false, &InvalidTypeError{Rule: "maxdate", Reason: fmt.Sprintf("parameter %q is not a recognized date", raw)}
	}
	t, ok := parseAnyDate(input)
	if !ok {
		return false, nil
	}
	return !t.After(bound), nil
}
