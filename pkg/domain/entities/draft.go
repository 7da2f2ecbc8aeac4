package entities

import "github.com/shopspring/decimal"

// Draft is a normalized field set produced for one target entity
type Draft interface {
	// Target returns the entity type the draft is shaped for.
	Target() EntityType
	// Fields returns the draft as a mapping of form field name to value.
	// Amounts are json.Number values.
	Fields() map[string]any
}

// DealDraft holds the Deal form fields derived from an RFQ
type DealDraft struct {
	CustomerRFQRef string          `json:"customer_rfq_ref"`
	Description    string          `json:"description"`
	Currency       string          `json:"currency"`
	LineItems      []LineItem      `json:"line_items"`
	TotalValue     decimal.Decimal `json:"total_value"`
	Notes          string          `json:"notes"`
}

// Target implements Draft
func (d DealDraft) Target() EntityType { return EntityDeal }

// Fields implements Draft
func (d DealDraft) Fields() map[string]any {
	return map[string]any{
		"customer_rfq_ref": d.CustomerRFQRef,
		"description":      d.Description,
		"currency":         d.Currency,
		"line_items":       cloneLineItems(d.LineItems),
		"total_value":      Amount(d.TotalValue),
		"notes":            d.Notes,
	}
}

// QuoteDraft holds the Quote form fields derived from a vendor proposal
type QuoteDraft struct {
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	LineItems     []LineItem      `json:"line_items"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Currency      string          `json:"currency"`
	PaymentTerms  string          `json:"payment_terms"`
	DeliveryTerms string          `json:"delivery_terms"`
	Notes         string          `json:"notes"`
}

// Target implements Draft
func (d QuoteDraft) Target() EntityType { return EntityQuote }

// Fields implements Draft
func (d QuoteDraft) Fields() map[string]any {
	return map[string]any{
		"title":          d.Title,
		"description":    d.Description,
		"line_items":     cloneLineItems(d.LineItems),
		"total_amount":   Amount(d.TotalAmount),
		"currency":       d.Currency,
		"payment_terms":  d.PaymentTerms,
		"delivery_terms": d.DeliveryTerms,
		"notes":          d.Notes,
	}
}

// CustomerPODraft holds the Customer PO form fields derived from an invoice
type CustomerPODraft struct {
	PONumber    string          `json:"po_number"`
	LineItems   []LineItem      `json:"line_items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Currency    string          `json:"currency"`
	Notes       string          `json:"notes"`
}

// Target implements Draft
func (d CustomerPODraft) Target() EntityType { return EntityCustomerPO }

// Fields implements Draft
func (d CustomerPODraft) Fields() map[string]any {
	return map[string]any{
		"po_number":    d.PONumber,
		"line_items":   cloneLineItems(d.LineItems),
		"total_amount": Amount(d.TotalAmount),
		"currency":     d.Currency,
		"notes":        d.Notes,
	}
}

// fieldSelector reports whether a draft field should be copied. An empty
// field list selects everything.
func fieldSelector(fields []string) func(string) bool {
	if len(fields) == 0 {
		return func(string) bool { return true }
	}
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return func(name string) bool {
		_, ok := set[name]
		return ok
	}
}
