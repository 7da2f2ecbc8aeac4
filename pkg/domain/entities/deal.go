package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Deal is a customer opportunity tracked from RFQ to payment
type Deal struct {
	ID                 uuid.UUID       `json:"id" validate:"required"`
	DealNumber         string          `json:"deal_number" validate:"required,max=50"`
	Status             Status          `json:"status" validate:"required"`
	CustomerID         string          `json:"customer_id,omitempty"`
	CustomerRFQRef     string          `json:"customer_rfq_ref,omitempty"`
	Description        string          `json:"description" validate:"required"`
	Currency           string          `json:"currency" validate:"required,len=3,uppercase"`
	LineItems          []LineItem      `json:"line_items"`
	TotalValue         decimal.Decimal `json:"total_value"`
	TotalCost          decimal.Decimal `json:"total_cost"`
	EstimatedMarginPct decimal.Decimal `json:"estimated_margin_pct"`
	Notes              string          `json:"notes,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// NewDeal creates a validated Deal in its initial status
func NewDeal(dealNumber, description, currency string) (*Deal, error) {
	if strings.TrimSpace(dealNumber) == "" {
		return nil, fmt.Errorf("deal number cannot be empty")
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("description cannot be empty")
	}
	code, err := normalizeCurrency(currency)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Deal{
		ID:          uuid.New(),
		DealNumber:  dealNumber,
		Status:      InitialStatus(EntityDeal),
		Description: description,
		Currency:    code,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Margin returns the percentage margin of value over cost, zero when the
// deal has no value yet.
func (d *Deal) Margin() decimal.Decimal {
	if d.TotalValue.IsZero() {
		return decimal.Zero
	}
	return d.TotalValue.Sub(d.TotalCost).Div(d.TotalValue).Mul(decimal.NewFromInt(100)).Round(2)
}

// ApplyDraft copies draft values into the deal. With no field names every
// draft field is copied, otherwise only the named ones.
func (d *Deal) ApplyDraft(draft DealDraft, fields ...string) {
	apply := fieldSelector(fields)
	if apply("customer_rfq_ref") {
		d.CustomerRFQRef = draft.CustomerRFQRef
	}
	if apply("description") && draft.Description != "" {
		d.Description = draft.Description
	}
	if apply("currency") && draft.Currency != "" {
		d.Currency = draft.Currency
	}
	if apply("line_items") {
		d.LineItems = cloneLineItems(draft.LineItems)
	}
	if apply("total_value") {
		d.TotalValue = draft.TotalValue
	}
	if apply("notes") {
		d.Notes = draft.Notes
	}
	d.touch()
}

// SetStatus records a status that the caller has already validated
func (d *Deal) SetStatus(s Status) {
	d.Status = s
	d.touch()
}

func (d *Deal) touch() {
	d.UpdatedAt = time.Now().UTC()
}

// normalizeCurrency upper-cases a currency code, defaulting empty input
func normalizeCurrency(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return DefaultCurrency, nil
	}
	if !IsCurrencyCode(code) {
		return "", fmt.Errorf("currency must be a 3-letter code, got %q", code)
	}
	return code, nil
}

// IsCurrencyCode reports whether code has the shape of an ISO 4217 code:
// three upper-case ASCII letters.
func IsCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}
