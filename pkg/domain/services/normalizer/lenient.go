package normalizer

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

var numberCleaner = strings.NewReplacer(",", "", "_", "", " ", "")

// maxExponent bounds the decimal exponent of an accepted amount. Rescaling a
// value like 1e999999999 never finishes, so such values count as unparseable.
const maxExponent = 30

// present reports whether a field exists and is not JSON null
func present(r gjson.Result) bool {
	return r.Exists() && r.Type != gjson.Null
}

// number coerces a JSON number or numeric string. ok is false when the value
// is absent, null, not numeric or out of range.
func number(r gjson.Result) (decimal.Decimal, bool) {
	var raw string
	switch r.Type {
	case gjson.Number:
		raw = r.Raw
	case gjson.String:
		raw = numberCleaner.Replace(strings.TrimSpace(r.Str))
	default:
		return decimal.Zero, false
	}
	if raw == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || !inRange(d) {
		return decimal.Zero, false
	}
	return d, true
}

func inRange(d decimal.Decimal) bool {
	exp := d.Exponent()
	return exp >= -maxExponent && exp <= maxExponent
}

// numberOr returns the coerced value or zero
func numberOr(r gjson.Result) decimal.Decimal {
	d, _ := number(r)
	return d
}

// firstNumber returns the first numeric field among keys, in order
func firstNumber(obj gjson.Result, keys ...string) (decimal.Decimal, bool) {
	for _, key := range keys {
		if d, ok := number(obj.Get(key)); ok {
			return d, true
		}
	}
	return decimal.Zero, false
}

// text renders scalars as trimmed strings; objects, arrays and null are empty
func text(r gjson.Result) string {
	switch r.Type {
	case gjson.String:
		return strings.TrimSpace(r.Str)
	case gjson.Number, gjson.True, gjson.False:
		return r.Raw
	default:
		return ""
	}
}

// firstText returns the first non-empty text among keys, in order
func firstText(obj gjson.Result, keys ...string) string {
	for _, key := range keys {
		if s := text(obj.Get(key)); s != "" {
			return s
		}
	}
	return ""
}
