// Package normalizer maps loosely-typed extracted documents onto the form
// fields of the entity they prefill. Every call returns a Result: missing or
// ambiguous input degrades to a default value plus a warning, never an error.
package normalizer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/vsinha/tradeops/pkg/domain/entities"
)

// Result is the outcome of one normalization call
type Result struct {
	Category entities.DocumentCategory
	// Data is nil when the category has no target entity.
	Data     entities.Draft
	Warnings []string
}

// Fields returns the draft as a field mapping; empty for unknown categories
func (r Result) Fields() map[string]any {
	if r.Data == nil {
		return map[string]any{}
	}
	return r.Data.Fields()
}

// HasWarnings reports whether any fallback or ambiguity was recorded
func (r Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// MarshalJSON renders the result as {"data": {...}, "warnings": [...]}
func (r Result) MarshalJSON() ([]byte, error) {
	warnings := r.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return json.Marshal(struct {
		Data     map[string]any `json:"data"`
		Warnings []string       `json:"warnings"`
	}{Data: r.Fields(), Warnings: warnings})
}

// Option configures a Normalizer
type Option func(*Normalizer)

// WithDefaultCurrency overrides the currency used when a document has none.
// Values that are not currency codes are ignored.
func WithDefaultCurrency(code string) Option {
	return func(n *Normalizer) {
		if code = strings.ToUpper(strings.TrimSpace(code)); entities.IsCurrencyCode(code) {
			n.defaultCurrency = code
		}
	}
}

// Normalizer holds immutable settings; it is safe for concurrent use.
type Normalizer struct {
	defaultCurrency string
}

// New creates a Normalizer with the given options
func New(opts ...Option) *Normalizer {
	n := &Normalizer{defaultCurrency: entities.DefaultCurrency}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

var defaultNormalizer = New()

// Normalize maps raw extracted JSON with the default normalizer. The category
// may be a DocumentCategory constant or any accepted string spelling.
func Normalize[C ~string](fields []byte, category C) Result {
	return defaultNormalizer.Normalize(fields, string(category))
}

// DefaultCurrency returns the fallback currency code
func (n *Normalizer) DefaultCurrency() string {
	return n.defaultCurrency
}

// NormalizeDocument normalizes an upstream extraction result
func (n *Normalizer) NormalizeDocument(doc entities.ExtractedDocument) Result {
	return n.Normalize(doc.Fields, doc.CategoryName())
}

// NormalizeMap accepts already-decoded fields such as the output of json.Unmarshal
func (n *Normalizer) NormalizeMap(fields map[string]any, category string) Result {
	raw, err := json.Marshal(fields)
	if err != nil {
		res := n.Normalize(nil, category)
		if res.Data != nil {
			res.Warnings = append([]string{"Unreadable document fields, using defaults"}, res.Warnings...)
		}
		return res
	}
	return n.Normalize(raw, category)
}

// Normalize dispatches on the category and applies the matching rule
func (n *Normalizer) Normalize(fields []byte, category string) Result {
	cat, ok := entities.ParseDocumentCategory(category)
	r, known := rules[cat]
	if !ok || !known {
		return Result{
			Category: cat,
			Warnings: []string{fmt.Sprintf("Unknown category: %s", category)},
		}
	}

	diag := &diagnostics{}
	doc := parseDocument(fields, diag)

	currency := n.resolveCurrency(doc, diag)
	items := mapLineItems(doc, r, diag)
	total := documentTotal(doc, r.totalField, items, diag)

	draft := r.build(doc, common{
		currency: currency,
		items:    items,
		total:    total,
		notes:    buildNotes(doc, r.notes),
	})

	return Result{
		Category: cat,
		Data:     draft,
		Warnings: diag.list(),
	}
}

// parseDocument returns the root object, treating anything that is not a
// JSON object as an empty document.
func parseDocument(fields []byte, diag *diagnostics) gjson.Result {
	if len(strings.TrimSpace(string(fields))) == 0 {
		return gjson.Parse("{}")
	}
	if !gjson.ValidBytes(fields) {
		diag.add("Unreadable document fields, using defaults")
		return gjson.Parse("{}")
	}
	doc := gjson.ParseBytes(fields)
	if !doc.IsObject() {
		diag.add("Document fields are not an object, using defaults")
		return gjson.Parse("{}")
	}
	return doc
}
