package fieldval

import "fmt"

func checkEqualTo(fields Fields, input string, param any) (bool, error) {
	peer, err := stringParam("equalTo", param)
	if err != nil {
		return false, err
	}
	other, err := fields.Value(peer)
	if err != nil {
		return false, err
	}
	return input == other, nil
}

func checkNot(_ Fields, input string, param any) (bool, error) {
	switch p := param.(type) {
	case string:
		return input != p, nil
	case []string:
		for _, forbidden := range p {
			if input == forbidden {
				return false, nil
			}
		}
		return true, nil
	case []any:
		// A non-string member poisons the whole set, even when an earlier
		// member already matches, so type-check everything before comparing.
		set := make([]string, len(p))
		for i, member := range p {
			forbidden, ok := member.(string)
			if !ok {
				return false, &InvalidTypeError{
					Rule:   "not",
					Reason: fmt.Sprintf("exclusion set members must be strings, got %T (%v)", member, member),
				}
			}
			set[i] = forbidden
		}
		for _, forbidden := range set {
			if input == forbidden {
				return false, nil
			}
		}
		return true, nil
	default:
		return false, &InvalidTypeError{
			Rule:   "not",
			Reason: fmt.Sprintf("want string or set of strings, got %T", param),
		}
	}
}
