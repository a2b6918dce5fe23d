package services

import (
	"strconv"
	"strings"
)

// Numeric body parameters may arrive as JSON numbers or as numeric strings;
// the frontend submits form values unconverted. Anything non-numeric coerces
// to zero, which validation then rejects as a missing value.

func coerceFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func coerceInt(v interface{}) int {
	return int(coerceFloat(v))
}

func coerceUint(v interface{}) uint {
	f := coerceFloat(v)
	if f < 0 {
		return 0
	}
	return uint(f)
}

// coerceFloatPtr keeps absent or blank coordinates NULL instead of zero.
func coerceFloatPtr(v interface{}) *float64 {
	if v == nil {
		return nil
	}
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return nil
	}
	f := coerceFloat(v)
	return &f
}
