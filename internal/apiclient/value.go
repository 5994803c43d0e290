package apiclient

import (
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Truthy reports whether v counts as true in a condition on the page:
// non-empty strings, non-zero numbers, true, and every object or array.
func Truthy(v gjson.Result) bool {
	switch v.Type {
	case gjson.True, gjson.JSON:
		return true
	case gjson.Number:
		return v.Num != 0
	case gjson.String:
		return v.Str != ""
	default:
		return false
	}
}

// Text converts v to the string the page would interpolate. Missing and
// null values are "".
func Text(v gjson.Result) string {
	switch v.Type {
	case gjson.Null:
		return ""
	case gjson.String:
		return v.Str
	case gjson.Number:
		return FormatNumber(v.Num)
	case gjson.True:
		return "true"
	case gjson.False:
		return "false"
	}
	if v.IsArray() {
		var parts []string
		for _, e := range v.Array() {
			parts = append(parts, Text(e))
		}
		return strings.Join(parts, ",")
	}
	return "[object Object]"
}

// FormatNumber renders f the way the page prints numbers: plain digits
// between 1e-6 and 1e21, shortest exponent form outside that range.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
