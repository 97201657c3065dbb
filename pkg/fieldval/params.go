package fieldval

import (
	"fmt"
	"math"
	"strconv"
)

// Parameter coercion shared by the built-in checkers. Rule documents decoded
// from YAML or JSON carry loosely typed values (bool, int, float64, string,
// []any), so each helper accepts every reasonable representation and fails
// with an InvalidTypeError otherwise.

func boolParam(rule string, param any) (bool, error) {
	b, ok := param.(bool)
	if !ok {
		return false, &InvalidTypeError{Rule: rule, Reason: fmt.Sprintf("want bool, got %T", param)}
	}
	return b, nil
}

func intParam(rule string, param any) (int, error) {
	switch p := param.(type) {
	case int:
		return p, nil
	case int8:
		return int(p), nil
	case int16:
		return int(p), nil
	case int32:
		return int(p), nil
	case int64:
		return int(p), nil
	case uint:
		return int(p), nil
	case uint8:
		return int(p), nil
	case uint16:
		return int(p), nil
	case uint32:
		return int(p), nil
	case uint64:
		return int(p), nil
	case float32:
		if float32(int(p)) == p {
			return int(p), nil
		}
	case float64:
		if p == math.Trunc(p) {
			return int(p), nil
		}
	}
	return 0, &InvalidTypeError{Rule: rule, Reason: fmt.Sprintf("want integer, got %T (%v)", param, param)}
}

func floatParam(rule string, param any) (float64, error) {
	switch p := param.(type) {
	case float64:
		return p, nil
	case float32:
		return float64(p), nil
	case int:
		return float64(p), nil
	case int8:
		return float64(p), nil
	case int16:
		return float64(p), nil
	case int32:
		return float64(p), nil
	case int64:
		return float64(p), nil
	case uint:
		return float64(p), nil
	case uint8:
		return float64(p), nil
	case uint16:
		return float64(p), nil
	case uint32:
		return float64(p), nil
	case uint64:
		return float64(p), nil
	case string:
		if numberRegex.MatchString(p) {
			if f, err := strconv.ParseFloat(p, 64); err == nil {
				return f, nil
			}
		}
	}
	return 0, &InvalidTypeError{Rule: rule, Reason: fmt.Sprintf("want number, got %T (%v)", param, param)}
}

func stringParam(rule string, param any) (string, error) {
	s, ok := param.(string)
	if !ok {
		return "", &InvalidTypeError{Rule: rule, Reason: fmt.Sprintf("want string, got %T", param)}
	}
	return s, nil
}
