package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var leadingNumber = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// ParseNumber reads the longest leading decimal number from raw.
// Empty, unparsable, NaN or infinite input yields 0, never an error.
func ParseNumber(raw string) float64 {
	m := leadingNumber.FindString(strings.TrimSpace(raw))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return finiteOrZero(v)
}

// CoerceNumber converts a decoded JSON value into a field value.
// Strings go through ParseNumber; anything that is not a number becomes 0.
func CoerceNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return finiteOrZero(n)
	case string:
		return ParseNumber(n)
	}
	return 0
}

func finiteOrZero(v float64) float64 {
	// -0 collapses to 0 as well.
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
