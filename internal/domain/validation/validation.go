// Package validation provides the constraint checker used by the project
// input form. It is a leaf package with no dependencies on the rest of the
// domain.
//
// All bounds are exclusive: a MinLength of 5 accepts strings of 6 or more
// characters, and Min 1 / Max 4 accepts 2 and 3 only.
//
// String length counts Unicode code points, not UTF-16 code units as a
// browser's String.length does. The two differ only for characters outside
// the Basic Multilingual Plane: "🚀🚀🚀" has length 3 here and 6 in a
// browser, so a browser-side check can accept a description this package
// rejects.
package validation

import (
	"strings"
	"unicode/utf8"
)

// Validatable pairs a value with the constraints it must satisfy. Value must
// be a string or a number (any integer or float kind). Nil constraint
// pointers are not applied.
//
// MinLength and MaxLength only apply to strings; Min and Max only apply to
// numbers.
type Validatable struct {
	Value     any
	Required  bool
	MinLength *int
	MaxLength *int
	Min       *float64
	Max       *float64
}

// Validate reports whether every applicable constraint in v holds.
func Validate(v Validatable) bool {
	s, isString := v.Value.(string)
	n, isNumber := toFloat(v.Value)

	valid := true

	if v.Required {
		// Numbers always have a non-empty textual form.
		valid = valid && (isNumber || (isString && strings.TrimSpace(s) != ""))
	}
	if v.MinLength != nil && isString {
		valid = valid && utf8.RuneCountInString(s) > *v.MinLength
	}
	if v.MaxLength != nil && isString {
		valid = valid && utf8.RuneCountInString(s) < *v.MaxLength
	}
	if v.Min != nil && isNumber {
		valid = valid && n > *v.Min
	}
	if v.Max != nil && isNumber {
		valid = valid && n < *v.Max
	}

	return valid
}

// Length returns a pointer to n for use as MinLength or MaxLength.
func Length(n int) *int { return &n }

// Bound returns a pointer to n for use as Min or Max.
func Bound(n float64) *float64 { return &n }

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
