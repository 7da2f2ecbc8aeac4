package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultValidityDays is the validity window of a new quote
const DefaultValidityDays = 30

// MaxTitleLength caps the quote title in runes; longer titles are cut
const MaxTitleLength = 200

// Quote is an offer sent to a customer, optionally linked to a deal
type Quote struct {
	ID            uuid.UUID       `json:"id" validate:"required"`
	QuoteNumber   string          `json:"quote_number" validate:"required,max=50"`
	CustomerID    string          `json:"customer_id,omitempty"`
	DealID        *uuid.UUID      `json:"deal_id,omitempty"`
	Status        Status          `json:"status" validate:"required"`
	Title         string          `json:"title" validate:"required,max=200"`
	Description   string          `json:"description,omitempty"`
	LineItems     []LineItem      `json:"line_items"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Currency      string          `json:"currency" validate:"required,len=3,uppercase"`
	PaymentTerms  string          `json:"payment_terms,omitempty"`
	DeliveryTerms string          `json:"delivery_terms,omitempty"`
	ValidityDays  int             `json:"validity_days" validate:"gte=0"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// NewQuote creates a validated Quote in draft status
func NewQuote(quoteNumber, title, currency string, dealID *uuid.UUID) (*Quote, error) {
	if strings.TrimSpace(quoteNumber) == "" {
		return nil, fmt.Errorf("quote number cannot be empty")
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title cannot be empty")
	}
	code, err := normalizeCurrency(currency)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Quote{
		ID:           uuid.New(),
		QuoteNumber:  quoteNumber,
		DealID:       dealID,
		Status:       InitialStatus(EntityQuote),
		Title:        truncateRunes(strings.TrimSpace(title), MaxTitleLength),
		Currency:     code,
		ValidityDays: DefaultValidityDays,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// ExpiresAt returns the end of the validity window counted from creation
func (q *Quote) ExpiresAt() time.Time {
	return q.CreatedAt.AddDate(0, 0, q.ValidityDays)
}

// ApplyDraft copies draft values into the quote. With no field names every
// draft field is copied, otherwise only the named ones.
func (q *Quote) ApplyDraft(draft QuoteDraft, fields ...string) {
	apply := fieldSelector(fields)
	if apply("title") && draft.Title != "" {
		q.Title = truncateRunes(draft.Title, MaxTitleLength)
	}
	if apply("description") {
		q.Description = draft.Description
	}
	if apply("line_items") {
		q.LineItems = cloneLineItems(draft.LineItems)
	}
	if apply("total_amount") {
		q.TotalAmount = draft.TotalAmount
	}
	if apply("currency") && draft.Currency != "" {
		q.Currency = draft.Currency
	}
	if apply("payment_terms") {
		q.PaymentTerms = draft.PaymentTerms
	}
	if apply("delivery_terms") {
		q.DeliveryTerms = draft.DeliveryTerms
	}
	if apply("notes") {
		q.Notes = draft.Notes
	}
	q.UpdatedAt = time.Now().UTC()
}

// SetStatus records a status that the caller has already validated
func (q *Quote) SetStatus(s Status) {
	q.Status = s
	q.UpdatedAt = time.Now().UTC()
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
