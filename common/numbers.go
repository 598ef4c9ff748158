package common

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrNotANumber = errors.New("value is not a number")

// Round rounds to two decimal places
func Round(float float64) float64 {
	return math.Round(float*100) / 100
}

// Fixed2 formats v with exactly two decimals, the way prices are shown.
func Fixed2(v float64) string {
	return strconv.FormatFloat(Round(v), 'f', 2, 64)
}

// Float returns the value of an optional number, empty counting as zero.
func Float(v *float64) float64 {
	if v == nil {
		return 0
	}

	return *v
}

// Ptr returns a pointer to v.
func Ptr(v float64) *float64 {
	return &v
}

// ParseNumber converts a stored value into an optional number. Documents written by
// older clients hold numbers as strings, so numeric strings are accepted and blank
// strings are empty.
func ParseNumber(v interface{}) (*float64, error) {
	switch n := v.(type) {
	case nil:
		return nil, nil
	case *float64:
		if n == nil {
			return nil, nil
		}

		return Ptr(*n), nil
	case float64:
		return &n, nil
	case float32:
		return Ptr(float64(n)), nil
	case int64:
		return Ptr(float64(n)), nil
	case int:
		return Ptr(float64(n)), nil
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return nil, nil
		}

		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: %q", ErrNotANumber, n)
		}

		return &f, nil
	}

	return nil, fmt.Errorf("%w: %T", ErrNotANumber, v)
}

// Number is ParseNumber that treats anything unparsable as empty.
func Number(v interface{}) *float64 {
	f, err := ParseNumber(v)
	if err != nil {
		return nil
	}

	return f
}

// Truthy reports whether an optional number is set and not zero.
func Truthy(v *float64) bool {
	return v != nil && *v != 0
}
