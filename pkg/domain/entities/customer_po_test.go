package entities

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestCustomerPO_Validation(t *testing.T) {
	poDate := time.Date(2026, 2, 24, 0, 0, 0, 0, time.UTC)
	dealID := uuid.New()

	po, err := NewCustomerPO("CPO-0001", "PO-778", "gbp", poDate, &dealID)
	if err != nil {
		t.Fatalf("Expected valid PO creation to succeed: %v", err)
	}
	if po.Status != CustomerPOReceived {
		t.Errorf("Expected status %s, got %s", CustomerPOReceived, po.Status)
	}
	if po.Currency != "GBP" {
		t.Errorf("Expected GBP, got %s", po.Currency)
	}

	testCases := []struct {
		name        string
		internalRef string
		poNumber    string
		poDate      time.Time
		expectError string
	}{
		{"empty internal ref", "", "PO-1", poDate, "internal reference cannot be empty"},
		{"empty po number", "CPO-1", "", poDate, "PO number cannot be empty"},
		{"zero date", "CPO-1", "PO-1", time.Time{}, "PO date cannot be empty"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCustomerPO(tc.internalRef, tc.poNumber, "AED", tc.poDate, nil)
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}
}

func TestCustomerPO_ApplyDraftKeepsPONumberWhenDraftEmpty(t *testing.T) {
	po, _ := NewCustomerPO("CPO-0002", "PO-1", "AED", time.Now(), nil)
	po.ApplyDraft(CustomerPODraft{Currency: "USD", TotalAmount: decimal.NewFromInt(1000)})

	if po.PONumber != "PO-1" {
		t.Errorf("Expected PO number to be kept, got %q", po.PONumber)
	}
	if po.Currency != "USD" {
		t.Errorf("Expected USD, got %s", po.Currency)
	}
	if !po.TotalAmount.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("Expected 1000, got %s", po.TotalAmount)
	}
}

func TestQuote_Defaults(t *testing.T) {
	quote, err := NewQuote("Q-001", "Vendor Proposal", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.Status != QuoteStatusDraft {
		t.Errorf("Expected draft status, got %s", quote.Status)
	}
	if quote.ValidityDays != DefaultValidityDays {
		t.Errorf("Expected %d validity days, got %d", DefaultValidityDays, quote.ValidityDays)
	}
	if !quote.ExpiresAt().Equal(quote.CreatedAt.AddDate(0, 0, 30)) {
		t.Errorf("unexpected expiry %v", quote.ExpiresAt())
	}

	if _, err := NewQuote("", "title", "", nil); err == nil || err.Error() != "quote number cannot be empty" {
		t.Errorf("Expected quote number error, got %v", err)
	}
}

func TestQuote_ApplyDraftLongText(t *testing.T) {
	quote, err := NewQuote("Q-002", "Vendor Proposal", "USD", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	terms := strings.Repeat("30% advance, balance against documents. ", 8)
	quote.ApplyDraft(QuoteDraft{
		Title:         strings.Repeat("é", MaxTitleLength+25),
		PaymentTerms:  terms,
		DeliveryTerms: terms,
	})

	if got := utf8.RuneCountInString(quote.Title); got != MaxTitleLength {
		t.Errorf("Expected title cut to %d runes, got %d", MaxTitleLength, got)
	}
	if quote.PaymentTerms != terms || quote.DeliveryTerms != terms {
		t.Errorf("Expected terms to be kept in full")
	}
}
