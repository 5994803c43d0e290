// Package forms turns raw field text into request payloads, applying the
// same lenient number parsing the panel's web page used.
package forms

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/ziadkadry99/opspanel/internal/apiclient"
)

var (
	// ErrInvalidItem is returned when an item has no name or no number.
	ErrInvalidItem = errors.New("a valid name and number are required")
	// ErrInvalidKeyValue is returned when a key is missing.
	ErrInvalidKeyValue = errors.New("a key is required")
)

// ParseItem validates the item form. The name is trimmed; the value keeps
// only its leading integer ("12abc" is 12, "abc" is rejected).
func ParseItem(name, rawValue string) (apiclient.Item, error) {
	name = strings.TrimSpace(name)
	value, ok := leadingNumber(rawValue)
	if name == "" || !ok {
		return apiclient.Item{}, ErrInvalidItem
	}
	return apiclient.Item{Name: name, Value: value}, nil
}

// ParseUser builds a user payload. A blank age is 0, a numeric age keeps
// its exact value and a non-numeric age is sent as null. Only the exact string "true" marks the user married.
func ParseUser(first, last, age, marital string) apiclient.UserRequest {
	return apiclient.UserRequest{
		FirstName:     first,
		LastName:      last,
		Age:           numberValue(age),
		MaritalStatus: marital == "true",
	}
}

// ParseKeyValue validates the key store form.
func ParseKeyValue(key, value string) (apiclient.KeyValue, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return apiclient.KeyValue{}, ErrInvalidKeyValue
	}
	return apiclient.KeyValue{Key: key, Value: value}, nil
}

// jsSpace is the whitespace the page trims before converting numbers.
const jsSpace = " \t\n\r\f\v\u00a0\ufeff\u2028\u2029"

// leadingNumber reads an optionally signed run of decimal digits after
// leading whitespace and ignores whatever follows. Runs too long for an
// int64 are kept as the nearest float.
func leadingNumber(s string) (float64, bool) {
	s = strings.TrimLeft(s, jsSpace)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0, false
	}
	f, err := strconv.ParseFloat(s[:i], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return normalizeZero(f), true
}

// numberValue converts a whole-string numeric field. Blank is 0; decimal,
// exponent and 0x/0o/0b integer forms are numbers; anything else, and any
// result that is not finite, is nil.
func numberValue(s string) *float64 {
	s = strings.Trim(s, jsSpace)
	if s == "" {
		f := 0.0
		return &f
	}
	f, ok := prefixedInt(s)
	if !ok {
		var err error
		if !isDecimal(s) {
			return nil
		}
		if f, err = strconv.ParseFloat(s, 64); err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil
		}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	f = normalizeZero(f)
	return &f
}

// prefixedInt parses unsigned 0x, 0o and 0b integer literals of any length.
func prefixedInt(s string) (float64, bool) {
	if len(s) < 3 || s[0] != '0' {
		return 0, false
	}
	var base float64
	switch s[1] {
	case 'x', 'X':
		base = 16
	case 'o', 'O':
		base = 8
	case 'b', 'B':
		base = 2
	default:
		return 0, false
	}
	var f float64
	for _, c := range s[2:] {
		d, err := strconv.ParseUint(string(c), 16, 8)
		if err != nil || float64(d) >= base {
			return 0, false
		}
		f = f*base + float64(d)
	}
	return f, true
}

// isDecimal reports whether s is a signed decimal literal with an optional
// fraction and exponent, or a signed "Infinity". It rejects the extra forms
// strconv accepts, such as "inf", "nan", hex floats and underscores.
func isDecimal(s string) bool {
	i := 0
	if s[i] == '+' || s[i] == '-' {
		i++
	}
	if s[i:] == "Infinity" {
		return true
	}
	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == exp {
			return false
		}
	}
	return i == len(s)
}

// normalizeZero folds -0 into 0, which is how it serializes on the page.
func normalizeZero(f float64) float64 {
	if f == 0 {
		return 0
	}
	return f
}
