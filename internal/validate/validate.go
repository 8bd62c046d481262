// Package validate holds the numeric checks applied to workout form input.
package validate

import (
	"math"
	"strconv"
	"strings"
)

// AllFinite reports whether every value is a finite number
func AllFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// AllPositive reports whether every value is strictly greater than zero
func AllPositive(values ...float64) bool {
	for _, v := range values {
		if !(v > 0) {
			return false
		}
	}
	return true
}

// Number coerces raw form text to a number. Blank input is 0 and
// anything that does not parse is NaN.
func Number(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
