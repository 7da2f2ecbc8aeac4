package normalizer

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/tradeops/pkg/domain/entities"
)

func hasWarning(warnings []string, substr string) bool {
	for _, w := range warnings {
		if strings.Contains(w, substr) {
			return true
		}
	}
	return false
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dealDraft(t *testing.T, res Result) entities.DealDraft {
	t.Helper()
	draft, ok := res.Data.(entities.DealDraft)
	require.True(t, ok, "expected a DealDraft, got %T", res.Data)
	return draft
}

func TestNormalize_CurrencyResolution(t *testing.T) {
	t.Run("Should use top-level currency without warnings when lines agree", func(t *testing.T) {
		res := Normalize([]byte(`{
			"currency": "USD",
			"rfq_number": "RFQ-001",
			"rfq_date": "2026-02-24",
			"line_items": [{"description": "Item 1", "quantity": 10, "unit_price_requested": 100, "currency": "USD"}],
			"total_value_requested": 1000
		}`), entities.CategoryRFQ)

		assert.Equal(t, "USD", dealDraft(t, res).Currency)
		assert.Empty(t, res.Warnings)
	})

	t.Run("Should keep top-level currency and note conflicting lines", func(t *testing.T) {
		res := Normalize([]byte(`{
			"currency": "USD",
			"line_items": [{"description": "Item 1", "quantity": 1, "unit_price_requested": 10, "currency": "EUR"}],
			"total_value_requested": 10
		}`), "RFQ")

		assert.Equal(t, "USD", dealDraft(t, res).Currency)
		assert.True(t, hasWarning(res.Warnings, "Mixed currencies"), res.Warnings)
	})

	t.Run("Should fall back to unanimous line item currency", func(t *testing.T) {
		res := Normalize([]byte(`{
			"rfq_number": "RFQ-001",
			"line_items": [
				{"description": "Item 1", "quantity": 10, "unit_price_requested": 100, "currency": "EUR"},
				{"description": "Item 2", "quantity": 1, "unit_price_requested": 5, "currency": "eur"}
			],
			"total_value_requested": 1005
		}`), "RFQ")

		assert.Equal(t, "EUR", dealDraft(t, res).Currency)
		assert.True(t, hasWarning(res.Warnings, "top-level missing"), res.Warnings)
	})

	t.Run("Should use default when line items disagree", func(t *testing.T) {
		res := Normalize([]byte(`{
			"line_items": [
				{"description": "Item 1", "quantity": 10, "unit_price_requested": 100, "currency": "USD"},
				{"description": "Item 2", "quantity": 5, "unit_price_requested": 50, "currency": "EUR"}
			],
			"total_value_requested": 1250
		}`), "RFQ")

		assert.Equal(t, "AED", dealDraft(t, res).Currency)
		assert.True(t, hasWarning(res.Warnings, "Mixed currencies"), res.Warnings)
		assert.True(t, hasWarning(res.Warnings, "USD, EUR"), res.Warnings)
	})

	t.Run("Should use default when no currency exists", func(t *testing.T) {
		res := Normalize([]byte(`{
			"line_items": [{"description": "Item 1", "quantity": 10, "unit_price_requested": 100}],
			"total_value_requested": 1000
		}`), "RFQ")

		assert.Equal(t, "AED", dealDraft(t, res).Currency)
		assert.True(t, hasWarning(res.Warnings, "default"), res.Warnings)
	})

	t.Run("Should honour a configured default currency", func(t *testing.T) {
		n := New(WithDefaultCurrency("sar"))
		res := n.Normalize([]byte(`{"line_items": []}`), "RFQ")

		assert.Equal(t, "SAR", dealDraft(t, res).Currency)
		assert.True(t, hasWarning(res.Warnings, "using default: SAR"), res.Warnings)
	})
}

func TestNormalize_UnrecognizedCurrency(t *testing.T) {
	t.Run("Should ignore a top-level currency that is not a code", func(t *testing.T) {
		res := Normalize([]byte(`{
			"currency": "US Dollars",
			"line_items": [{"quantity": 1, "unit_price_requested": 10}],
			"total_value_requested": 10
		}`), "RFQ")

		assert.Equal(t, "AED", dealDraft(t, res).Currency)
		assert.Contains(t, res.Warnings, `Unrecognized currency "US Dollars", ignored`)
		assert.Contains(t, res.Warnings, "No currency found, using default: AED")
	})

	t.Run("Should fall back to line items past an unrecognized top-level value", func(t *testing.T) {
		res := Normalize([]byte(`{
			"currency": "$",
			"line_items": [{"quantity": 1, "unit_price_requested": 10, "currency": "usd"}],
			"total_value_requested": 10
		}`), "RFQ")

		assert.Equal(t, "USD", dealDraft(t, res).Currency)
		assert.True(t, hasWarning(res.Warnings, `Unrecognized currency "$"`), res.Warnings)
	})

	t.Run("Should report a repeated bad line currency once", func(t *testing.T) {
		res := Normalize([]byte(`{
			"currency": "EUR",
			"line_items": [
				{"quantity": 1, "unit_price": 10, "currency": "Euro"},
				{"quantity": 1, "unit_price": 10, "currency": "Euro"}
			],
			"total_price": 20
		}`), "vendor_proposal")

		assert.Equal(t, []string{`Unrecognized currency "Euro", ignored`}, res.Warnings)
	})

	t.Run("Should ignore an invalid configured default", func(t *testing.T) {
		n := New(WithDefaultCurrency("dollars"))
		assert.Equal(t, entities.DefaultCurrency, n.DefaultCurrency())
	})
}

func TestNormalize_OutOfRangeNumbers(t *testing.T) {
	t.Run("Should treat huge exponents as unparseable", func(t *testing.T) {
		res := Normalize([]byte(`{
			"currency": "USD",
			"total_value_requested": 1,
			"line_items": [{"quantity": 1e999999999, "unit_price_requested": 1}]
		}`), "RFQ")

		draft := dealDraft(t, res)
		require.Len(t, draft.LineItems, 1)
		assert.True(t, draft.LineItems[0].Quantity.IsZero())
		assert.True(t, draft.LineItems[0].TotalPrice.IsZero())
		assert.True(t, draft.TotalValue.Equal(dec("1")))
	})

	t.Run("Should warn when an out of range price is dropped", func(t *testing.T) {
		res := Normalize([]byte(`{
			"currency": "USD",
			"line_items": [{"quantity": 2, "unit_price_requested": "1e-999999999"}],
			"total_value_requested": 1e99999999999
		}`), "RFQ")

		draft := dealDraft(t, res)
		assert.Contains(t, res.Warnings, "Line item 1: Missing unit price")
		assert.True(t, hasWarning(res.Warnings, "Total missing"), res.Warnings)
		assert.True(t, draft.TotalValue.IsZero())
	})

	t.Run("Should keep ordinary scientific notation", func(t *testing.T) {
		res := Normalize([]byte(`{
			"currency": "USD",
			"line_items": [{"quantity": 1.5e3, "unit_price_requested": 2}],
			"total_value_requested": 3000
		}`), "RFQ")

		assert.True(t, dealDraft(t, res).LineItems[0].Quantity.Equal(dec("1500")))
		assert.Empty(t, res.Warnings)
	})
}

func TestNormalize_RFQLineItems(t *testing.T) {
	t.Run("Should map line items and compute totals", func(t *testing.T) {
		res := Normalize([]byte(`{
			"currency": "USD",
			"rfq_number": "RFQ-001",
			"rfq_date": "2026-02-24",
			"line_items": [{
				"description": "Steel Coil",
				"specification": "Hot rolled, 2mm",
				"quantity": 100,
				"unit": "kg",
				"unit_price_requested": 5.5,
				"currency": "USD"
			}],
			"total_value_requested": 550
		}`), "RFQ")

		draft := dealDraft(t, res)
		require.Len(t, draft.LineItems, 1)
		line := draft.LineItems[0]
		assert.Equal(t, "Steel Coil", line.Description)
		assert.Equal(t, "Hot rolled, 2mm", line.Specification)
		assert.Equal(t, "Hot rolled, 2mm", line.MaterialSpec)
		assert.True(t, line.Quantity.Equal(dec("100")))
		assert.Equal(t, "kg", line.Unit)
		assert.True(t, line.UnitPrice.Equal(dec("5.5")), line.UnitPrice.String())
		assert.True(t, line.TotalPrice.Equal(dec("550")), line.TotalPrice.String())
		assert.True(t, draft.TotalValue.Equal(dec("550")))
		assert.Equal(t, "RFQ-001", draft.CustomerRFQRef)
		assert.Empty(t, res.Warnings)
	})

	t.Run("Should fall back to generic unit_price", func(t *testing.T) {
		res := Normalize([]byte(`{
			"currency": "USD",
			"line_items": [{"description": "Item 1", "quantity": 10, "unit_price": 100, "currency": "USD"}],
			"total_value_requested": 1000
		}`), "RFQ")

		draft := dealDraft(t, res)
		assert.True(t, draft.LineItems[0].UnitPrice.Equal(dec("100")))
		assert.False(t, hasWarning(res.Warnings, "Missing unit price"))
	})

	t.Run("Should prefer requested price over generic price", func(t *testing.T) {
		res := Normalize([]byte(`{
			"currency": "USD",
			"line_items": [{"quantity": 2, "unit_price_requested": 7, "unit_price": 9}],
			"total_value_requested": 14
		}`), "RFQ")

		assert.True(t, dealDraft(t, res).LineItems[0].UnitPrice.Equal(dec("7")))
	})

	t.Run("Should warn about missing prices per item", func(t *testing.T) {
		res := Normalize([]byte(`{
			"currency": "USD",
			"line_items": [
				{"description": "Item 1", "quantity": 10, "currency": "USD"},
				{"description": "Item 2", "quantity": 1, "unit_price_requested": null, "unit_price": "n/a"}
			],
			"total_value_requested": 0
		}`), "RFQ")

		draft := dealDraft(t, res)
		assert.True(t, draft.LineItems[0].UnitPrice.IsZero())
		assert.True(t, draft.LineItems[0].TotalPrice.IsZero())
		assert.Contains(t, res.Warnings, "Line item 1: Missing unit price")
		assert.Contains(t, res.Warnings, "Line item 2: Missing unit price")
	})

	t.Run("Should coerce lenient numbers and default bad quantities to zero", func(t *testing.T) {
		res := Normalize([]byte(`{
			"currency": "USD",
			"line_items": [
				{"quantity": "1,200", "unit_price_requested": "2.50"},
				{"quantity": "lots", "unit_price_requested": 3}
			],
			"total_value_requested": 3000
		}`), "RFQ")

		draft := dealDraft(t, res)
		assert.True(t, draft.LineItems[0].Quantity.Equal(dec("1200")))
		assert.True(t, draft.LineItems[0].TotalPrice.Equal(dec("3000")))
		assert.True(t, draft.LineItems[1].Quantity.IsZero())
		assert.True(t, draft.LineItems[1].TotalPrice.IsZero())
	})

	t.Run("Should inherit the requested delivery date", func(t *testing.T) {
		res := Normalize([]byte(`{
			"currency": "USD",
			"delivery_date_requested": "2026-03-24",
			"line_items": [
				{"quantity": 1, "unit_price_requested": 1},
				{"quantity": 1, "unit_price_requested": 1, "required_delivery_date": "2026-04-01"}
			],
			"total_value_requested": 2
		}`), "RFQ")

		draft := dealDraft(t, res)
		assert.Equal(t, "2026-03-24", draft.LineItems[0].RequiredDeliveryDate)
		assert.Equal(t, "2026-04-01", draft.LineItems[1].RequiredDeliveryDate)
	})

	t.Run("Should canonicalize unit aliases", func(t *testing.T) {
		res := Normalize([]byte(`{
			"currency": "USD",
			"line_items": [
				{"unit": " KGS ", "quantity": 1, "unit_price_requested": 1},
				{"unit": "Nos.", "quantity": 1, "unit_price_requested": 1},
				{"unit": "drum", "quantity": 1, "unit_price_requested": 1}
			],
			"total_value_requested": 3
		}`), "RFQ")

		draft := dealDraft(t, res)
		assert.Equal(t, "kg", draft.LineItems[0].Unit)
		assert.Equal(t, "pcs", draft.LineItems[1].Unit)
		assert.Equal(t, "drum", draft.LineItems[2].Unit)
	})
}

func TestNormalize_Totals(t *testing.T) {
	t.Run("Should derive a missing total from the lines", func(t *testing.T) {
		res := Normalize([]byte(`{
			"currency": "USD",
			"line_items": [{"quantity": 4, "unit_price_requested": 2.5}]
		}`), "RFQ")

		assert.True(t, dealDraft(t, res).TotalValue.Equal(dec("10")))
		assert.True(t, hasWarning(res.Warnings, "Total missing"), res.Warnings)
	})

	t.Run("Should keep the document total and flag a mismatch", func(t *testing.T) {
		res := Normalize([]byte(`{
			"currency": "USD",
			"line_items": [{"quantity": 4, "unit_price_requested": 2.5}],
			"total_value_requested": 12
		}`), "RFQ")

		assert.True(t, dealDraft(t, res).TotalValue.Equal(dec("12")))
		assert.True(t, hasWarning(res.Warnings, "do not match document total"), res.Warnings)
	})
}

func TestNormalize_Notes(t *testing.T) {
	t.Run("Should include RFQ date, payment terms and delivery in notes", func(t *testing.T) {
		res := Normalize([]byte(`{
			"currency": "USD",
			"rfq_number": "RFQ-001",
			"rfq_date": "2026-02-24",
			"payment_terms": "Net 30",
			"delivery_date_requested": "2026-03-24",
			"line_items": [],
			"total_value_requested": 0
		}`), "RFQ")

		notes := dealDraft(t, res).Notes
		assert.Equal(t, "RFQ Date: 2026-02-24\nPayment Terms: Net 30\nDelivery: 2026-03-24", notes)
	})

	t.Run("Should omit absent auxiliary values", func(t *testing.T) {
		res := Normalize([]byte(`{"currency": "USD", "payment_terms": "Net 60"}`), "RFQ")

		notes := dealDraft(t, res).Notes
		assert.Equal(t, "Payment Terms: Net 60", notes)
		assert.NotContains(t, notes, "N/A")
	})
}

func TestNormalize_VendorProposal(t *testing.T) {
	t.Run("Should map vendor proposal with top-level currency", func(t *testing.T) {
		res := Normalize([]byte(`{
			"currency": "USD",
			"proposal_number": "VP-001",
			"proposal_date": "2026-02-24",
			"vendor_name": "Gulf Metals",
			"lead_time_days": 21,
			"payment_terms": "50% advance",
			"delivery_terms": "CIF Jebel Ali",
			"line_items": [{"description": "Supply Item", "quantity": 50, "unit_price": 25, "currency": "USD"}],
			"total_price": 1250
		}`), entities.CategoryVendorProposal)

		draft, ok := res.Data.(entities.QuoteDraft)
		require.True(t, ok)
		assert.Equal(t, "USD", draft.Currency)
		assert.Equal(t, "VP-001", draft.Title)
		assert.Equal(t, "50% advance", draft.PaymentTerms)
		assert.Equal(t, "CIF Jebel Ali", draft.DeliveryTerms)
		require.Len(t, draft.LineItems, 1)
		assert.True(t, draft.LineItems[0].TotalPrice.Equal(dec("1250")))
		assert.True(t, draft.TotalAmount.Equal(dec("1250")))
		assert.Contains(t, draft.Notes, "Lead Time: 21 days")
		assert.Contains(t, draft.Notes, "Vendor: Gulf Metals")
		assert.Empty(t, res.Warnings)
	})

	t.Run("Should fall back to line item currency and default title", func(t *testing.T) {
		res := Normalize([]byte(`{
			"line_items": [{"description": "Supply Item", "quantity": 50, "unit_price": 25, "total_price": 1200, "currency": "EUR"}],
			"total_price": 1200
		}`), "VENDOR_PROPOSAL")

		draft, ok := res.Data.(entities.QuoteDraft)
		require.True(t, ok)
		assert.Equal(t, "EUR", draft.Currency)
		assert.Equal(t, "Vendor Proposal", draft.Title)
		assert.True(t, draft.LineItems[0].TotalPrice.Equal(dec("1200")), "supplied line total wins")
		assert.NotEmpty(t, res.Warnings)
	})

	t.Run("Should not use requested price field for proposals", func(t *testing.T) {
		res := Normalize([]byte(`{
			"currency": "USD",
			"line_items": [{"quantity": 1, "unit_price_requested": 9}],
			"total_price": 9
		}`), "vendor_proposal")

		assert.True(t, hasWarning(res.Warnings, "Missing unit price"), res.Warnings)
	})
}

func TestNormalize_Invoice(t *testing.T) {
	t.Run("Should map invoice with top-level currency", func(t *testing.T) {
		res := Normalize([]byte(`{
			"currency": "USD",
			"invoice_number": "INV-001",
			"invoice_date": "2026-02-24",
			"invoice_from": "Acme Trading LLC",
			"line_items": [{"description": "Invoice Item", "quantity": 100, "unit_price": 10, "currency": "USD"}],
			"total_amount": 1000
		}`), entities.CategoryInvoice)

		draft, ok := res.Data.(entities.CustomerPODraft)
		require.True(t, ok)
		assert.Equal(t, "USD", draft.Currency)
		assert.Equal(t, "INV-001", draft.PONumber)
		require.Len(t, draft.LineItems, 1)
		assert.Equal(t, "Invoice Date: 2026-02-24\nFrom: Acme Trading LLC", draft.Notes)
		assert.Empty(t, res.Warnings)
	})

	t.Run("Should use the invoice line total field", func(t *testing.T) {
		res := Normalize([]byte(`{
			"currency": "GBP",
			"line_items": [{"quantity": 3, "unit_price": 10, "total": 27, "material_spec": "S355", "specification": "ignored"}],
			"total_amount": 27
		}`), "INVOICE")

		draft, ok := res.Data.(entities.CustomerPODraft)
		require.True(t, ok)
		assert.True(t, draft.LineItems[0].TotalPrice.Equal(dec("27")))
		assert.Equal(t, "S355", draft.LineItems[0].MaterialSpec)
	})

	t.Run("Should fall back to line item currency", func(t *testing.T) {
		res := Normalize([]byte(`{
			"invoice_number": "INV-001",
			"line_items": [{"description": "Invoice Item", "quantity": 100, "unit_price": 10, "currency": "GBP"}],
			"total_amount": 1000
		}`), "INVOICE")

		draft, ok := res.Data.(entities.CustomerPODraft)
		require.True(t, ok)
		assert.Equal(t, "GBP", draft.Currency)
		assert.NotEmpty(t, res.Warnings)
	})
}

func TestNormalize_Dispatch(t *testing.T) {
	rfq := []byte(`{"currency": "USD", "rfq_number": "RFQ-001", "line_items": [], "total_value_requested": 0}`)

	t.Run("Should dispatch equally on constant and string name", func(t *testing.T) {
		byConst := Normalize(rfq, entities.CategoryRFQ)
		byName := Normalize(rfq, "RFQ")

		assert.Equal(t, byConst, byName)
		assert.Equal(t, "RFQ-001", byName.Fields()["customer_rfq_ref"])
		assert.Equal(t, "USD", byName.Fields()["currency"])
	})

	t.Run("Should return empty data for unknown category", func(t *testing.T) {
		res := Normalize([]byte(`{}`), "UNKNOWN")

		assert.Nil(t, res.Data)
		assert.Equal(t, map[string]any{}, res.Fields())
		assert.Equal(t, []string{"Unknown category: UNKNOWN"}, res.Warnings)
	})

	t.Run("Should treat categories without a target as unknown", func(t *testing.T) {
		res := Normalize([]byte(`{}`), entities.CategoryCertificate)

		assert.Empty(t, res.Fields())
		assert.True(t, hasWarning(res.Warnings, "Unknown category: certificate"))
	})

	t.Run("Should report target entities", func(t *testing.T) {
		target, ok := TargetFor(entities.CategoryInvoice)
		assert.True(t, ok)
		assert.Equal(t, entities.EntityCustomerPO, target)

		_, ok = TargetFor(entities.CategoryPackingList)
		assert.False(t, ok)
	})
}

func TestNormalize_NeverFails(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte(``),
		[]byte(`not json`),
		[]byte(`[1, 2, 3]`),
		[]byte(`{"line_items": "oops"}`),
		[]byte(`{"line_items": [null, 7, "x", {"quantity": {"nested": true}}]}`),
		[]byte(`{"currency": 42, "total_value_requested": "many"}`),
	}

	for _, category := range []string{"RFQ", "vendor_proposal", "invoice", "other", ""} {
		for _, input := range inputs {
			res := Normalize(input, category)
			assert.NotNil(t, res.Fields())
			assert.NotNil(t, res.Warnings)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	input := []byte(`{
		"line_items": [
			{"description": "A", "quantity": 2, "unit_price_requested": 3, "currency": "USD"},
			{"description": "B", "quantity": 1, "currency": "EUR"}
		]
	}`)

	first := Normalize(input, "RFQ")
	second := Normalize(input, "RFQ")
	assert.Equal(t, first, second)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.JSONEq(t, string(firstJSON), string(secondJSON))
}

func TestNormalize_ConcurrentUse(t *testing.T) {
	n := New()
	input := []byte(`{"currency": "USD", "line_items": [{"quantity": 2, "unit_price": 3}], "total_amount": 6}`)

	var wg sync.WaitGroup
	results := make([]Result, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = n.Normalize(input, "invoice")
		}(i)
	}
	wg.Wait()

	for _, res := range results[1:] {
		assert.Equal(t, results[0], res)
	}
}

func TestNormalizeMap(t *testing.T) {
	t.Run("Should accept decoded JSON maps", func(t *testing.T) {
		res := New().NormalizeMap(map[string]any{
			"currency":       "USD",
			"invoice_number": "INV-9",
			"line_items": []any{
				map[string]any{"quantity": 2.0, "unit_price": 4.25},
			},
			"total_amount": 8.5,
		}, "INVOICE")

		assert.Equal(t, "INV-9", res.Fields()["po_number"])
		assert.Empty(t, res.Warnings)
	})

	t.Run("Should degrade unmarshalable values to defaults", func(t *testing.T) {
		res := New().NormalizeMap(map[string]any{"currency": make(chan int)}, "RFQ")

		require.NotNil(t, res.Data)
		assert.Equal(t, "AED", res.Fields()["currency"])
		assert.True(t, hasWarning(res.Warnings, "Unreadable document fields"))
	})
}

func TestResult_MarshalJSON(t *testing.T) {
	t.Run("Should encode unknown categories as empty data", func(t *testing.T) {
		res := Normalize([]byte(`{}`), "UNKNOWN")
		out, err := json.Marshal(res)
		require.NoError(t, err)
		assert.JSONEq(t, `{"data": {}, "warnings": ["Unknown category: UNKNOWN"]}`, string(out))
	})

	t.Run("Should encode amounts as exact JSON numbers", func(t *testing.T) {
		res := Normalize([]byte(`{
			"currency": "USD",
			"invoice_number": "INV-3",
			"line_items": [{"description": "Bolt", "quantity": "1,000", "unit_price": 0.125, "unit": "pcs"}],
			"total_amount": 125
		}`), "invoice")
		out, err := json.Marshal(res)
		require.NoError(t, err)

		assert.Contains(t, string(out), `"total_amount":125`)
		assert.Contains(t, string(out), `"quantity":1000`)
		assert.Contains(t, string(out), `"unit_price":0.125`)
		assert.Contains(t, string(out), `"total_price":125`)
	})
}

func TestNormalizeDocument(t *testing.T) {
	doc := entities.ExtractedDocument{
		Category:    entities.CategoryRFQ,
		RawCategory: "RFQ",
		Fields:      json.RawMessage(`{"currency": "EUR", "rfq_number": "R-7"}`),
	}

	res := New().NormalizeDocument(doc)
	assert.Equal(t, entities.CategoryRFQ, res.Category)
	assert.Equal(t, "R-7", dealDraft(t, res).CustomerRFQRef)
}
