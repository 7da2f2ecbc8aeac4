package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerPO is a purchase order received from a customer
type CustomerPO struct {
	ID           uuid.UUID       `json:"id" validate:"required"`
	InternalRef  string          `json:"internal_ref" validate:"required"`
	PONumber     string          `json:"po_number" validate:"required"`
	CustomerID   string          `json:"customer_id,omitempty"`
	DealID       *uuid.UUID      `json:"deal_id,omitempty"`
	QuoteID      *uuid.UUID      `json:"quote_id,omitempty"`
	Status       Status          `json:"status" validate:"required"`
	LineItems    []LineItem      `json:"line_items"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Currency     string          `json:"currency" validate:"required,len=3,uppercase"`
	PODate       time.Time       `json:"po_date"`
	DeliveryDate *time.Time      `json:"delivery_date,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// NewCustomerPO creates a validated CustomerPO in received status
func NewCustomerPO(internalRef, poNumber, currency string, poDate time.Time, dealID *uuid.UUID) (*CustomerPO, error) {
	if strings.TrimSpace(internalRef) == "" {
		return nil, fmt.Errorf("internal reference cannot be empty")
	}
	if strings.TrimSpace(poNumber) == "" {
		return nil, fmt.Errorf("PO number cannot be empty")
	}
	if poDate.IsZero() {
		return nil, fmt.Errorf("PO date cannot be empty")
	}
	code, err := normalizeCurrency(currency)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &CustomerPO{
		ID:          uuid.New(),
		InternalRef: internalRef,
		PONumber:    poNumber,
		DealID:      dealID,
		Status:      InitialStatus(EntityCustomerPO),
		Currency:    code,
		PODate:      poDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ApplyDraft copies draft values into the PO. With no field names every
// draft field is copied, otherwise only the named ones.
func (p *CustomerPO) ApplyDraft(draft CustomerPODraft, fields ...string) {
	apply := fieldSelector(fields)
	if apply("po_number") && draft.PONumber != "" {
		p.PONumber = draft.PONumber
	}
	if apply("line_items") {
		p.LineItems = cloneLineItems(draft.LineItems)
	}
	if apply("total_amount") {
		p.TotalAmount = draft.TotalAmount
	}
	if apply("currency") && draft.Currency != "" {
		p.Currency = draft.Currency
	}
	if apply("notes") {
		p.Notes = draft.Notes
	}
	p.UpdatedAt = time.Now().UTC()
}

// SetStatus records a status that the caller has already validated
func (p *CustomerPO) SetStatus(s Status) {
	p.Status = s
	p.UpdatedAt = time.Now().UTC()
}
