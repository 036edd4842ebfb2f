package graphml

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// formatValue renders v as attribute text. ok is false when the value must be
// omitted (nil or not-a-number).
func formatValue(v any) (s string, ok bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		if isNaNText(x) {
			return "", false
		}
		return x, true
	case *string:
		if x == nil {
			return "", false
		}
		return formatValue(*x)
	case float64:
		if math.IsNaN(x) {
			return "", false
		}
		return pyFloat(x), true
	case float32:
		return formatValue(float64(x))
	case *float64:
		if x == nil {
			return "", false
		}
		return formatValue(*x)
	case int:
		return strconv.Itoa(x), true
	case int32:
		return strconv.FormatInt(int64(x), 10), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case *int64:
		if x == nil {
			return "", false
		}
		return strconv.FormatInt(*x, 10), true
	case bool:
		if x {
			return "True", true
		}
		return "False", true
	default:
		return fmt.Sprint(x), true
	}
}

func isNaNText(s string) bool {
	return s == "nan" || s == "NaN"
}

// pyFloat formats f like Python's repr(float): shortest round-trip digits,
// positional notation for exponents in [-4, 16), always with a fractional
// part, scientific notation otherwise.
func pyFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, _ := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])

	if exp < -4 || exp >= 16 {
		return sci
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
