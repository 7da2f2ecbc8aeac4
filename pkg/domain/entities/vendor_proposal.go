package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VendorProposal is a supplier's offer against a deal
type VendorProposal struct {
	ID            uuid.UUID        `json:"id" validate:"required"`
	DealID        uuid.UUID        `json:"deal_id" validate:"required"`
	VendorID      string           `json:"vendor_id" validate:"required"`
	VendorName    string           `json:"vendor_name,omitempty"`
	Status        Status           `json:"status" validate:"required"`
	LineItems     []LineItem       `json:"line_items"`
	TotalPrice    *decimal.Decimal `json:"total_price,omitempty"`
	Currency      string           `json:"currency" validate:"required,len=3,uppercase"`
	LeadTimeDays  int              `json:"lead_time_days,omitempty" validate:"gte=0"`
	PaymentTerms  string           `json:"payment_terms,omitempty"`
	ValidityDate  *time.Time       `json:"validity_date,omitempty"`
	SpecsMatch    *bool            `json:"specs_match,omitempty"`
	Discrepancies []string         `json:"discrepancies,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

// NewVendorProposal creates a proposal request for a vendor on a deal
func NewVendorProposal(dealID uuid.UUID, vendorID, currency string) (*VendorProposal, error) {
	if dealID == uuid.Nil {
		return nil, fmt.Errorf("deal id cannot be empty")
	}
	if vendorID == "" {
		return nil, fmt.Errorf("vendor id cannot be empty")
	}
	code, err := normalizeCurrency(currency)
	if err != nil {
		return nil, err
	}

	return &VendorProposal{
		ID:        uuid.New(),
		DealID:    dealID,
		VendorID:  vendorID,
		Status:    InitialStatus(EntityVendorProposal),
		Currency:  code,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// HasPrice reports whether the proposal quotes a positive total price
func (p *VendorProposal) HasPrice() bool {
	return p.TotalPrice != nil && p.TotalPrice.IsPositive()
}

// SetStatus records a status that the caller has already validated
func (p *VendorProposal) SetStatus(s Status) {
	p.Status = s
}
