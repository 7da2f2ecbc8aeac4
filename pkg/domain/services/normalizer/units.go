package normalizer

import "strings"

// unitAliases folds common spellings of a unit of measure to one code
var unitAliases = map[string]string{
	"kg":        "kg",
	"kgs":       "kg",
	"kilo":      "kg",
	"kilos":     "kg",
	"kilogram":  "kg",
	"kilograms": "kg",
	"pc":        "pcs",
	"pcs":       "pcs",
	"piece":     "pcs",
	"pieces":    "pcs",
	"nos":       "pcs",
	"no":        "pcs",
	"ea":        "pcs",
	"each":      "pcs",
	"unit":      "pcs",
	"units":     "pcs",
	"mt":        "mt",
	"ton":       "mt",
	"tons":      "mt",
	"tonne":     "mt",
	"tonnes":    "mt",
	"m":         "m",
	"meter":     "m",
	"meters":    "m",
	"metre":     "m",
	"metres":    "m",
	"l":         "l",
	"ltr":       "l",
	"liter":     "l",
	"liters":    "l",
	"litre":     "l",
	"litres":    "l",
}

// canonicalUnit trims the unit and folds known aliases. Unknown units are
// returned as written.
func canonicalUnit(unit string) string {
	unit = strings.TrimSpace(unit)
	key := strings.TrimSuffix(strings.ToLower(unit), ".")
	if canonical, ok := unitAliases[key]; ok {
		return canonical
	}
	return unit
}
