package normalizer

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/vsinha/tradeops/pkg/domain/entities"
)

// resolveCurrency picks the document currency. Precedence, in order:
// top-level value, top-level with conflicting lines noted, unanimous line
// items, mixed lines with default, nothing with default.
func (n *Normalizer) resolveCurrency(doc gjson.Result, diag *diagnostics) string {
	top := currencyCode(doc.Get("currency"), diag)
	lines := lineCurrencies(doc, diag)

	if top != "" {
		if conflicting := without(lines, top); len(conflicting) > 0 {
			diag.add("Mixed currencies detected in line items (%s), using top-level %s",
				strings.Join(conflicting, ", "), top)
		}
		return top
	}

	switch len(lines) {
	case 0:
		diag.add("No currency found, using default: %s", n.defaultCurrency)
		return n.defaultCurrency
	case 1:
		diag.add("Currency extracted from line items (top-level missing)")
		return lines[0]
	default:
		diag.add("Mixed currencies in line items (%s), using default: %s",
			strings.Join(lines, ", "), n.defaultCurrency)
		return n.defaultCurrency
	}
}

// lineCurrencies returns the distinct non-empty line currencies in first-seen order
func lineCurrencies(doc gjson.Result, diag *diagnostics) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, item := range lineItemsOf(doc) {
		code := currencyCode(item.Get("currency"), diag)
		if code == "" {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}

// currencyCode returns the upper-cased code, or empty when the value is absent
// or not shaped like a currency code. Unrecognized values are noted.
func currencyCode(r gjson.Result, diag *diagnostics) string {
	if r.Type != gjson.String {
		return ""
	}
	code := strings.ToUpper(strings.TrimSpace(r.Str))
	if code == "" {
		return ""
	}
	if !entities.IsCurrencyCode(code) {
		diag.add("Unrecognized currency %q, ignored", strings.TrimSpace(r.Str))
		return ""
	}
	return code
}

func without(codes []string, skip string) []string {
	var out []string
	for _, c := range codes {
		if c != skip {
			out = append(out, c)
		}
	}
	return out
}
