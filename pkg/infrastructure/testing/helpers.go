package testing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vsinha/tradeops/pkg/domain/entities"
	"github.com/vsinha/tradeops/pkg/infrastructure/repositories/memory"
)

// Sample extraction fields for each mapped document category
var (
	RFQFields = []byte(`{
		"rfq_number": "RFQ-2026-001",
		"rfq_date": "2026-02-24",
		"customer_name": "Emirates Steel Works",
		"currency": "USD",
		"payment_terms": "Net 30",
		"delivery_date_requested": "2026-03-24",
		"special_requirements": "Mill test certificates required",
		"line_items": [
			{"description": "Steel Coil", "specification": "Hot rolled, 2mm", "quantity": 100, "unit": "kg", "unit_price_requested": 5.5, "currency": "USD"},
			{"description": "Steel Plate", "specification": "S355, 10mm", "quantity": 20, "unit": "pcs", "unit_price_requested": 120, "currency": "USD"}
		],
		"total_value_requested": 2950
	}`)

	VendorProposalFields = []byte(`{
		"proposal_number": "VP-881",
		"vendor_name": "Gulf Metals Trading",
		"proposal_date": "2026-02-26",
		"currency": "USD",
		"lead_time_days": 21,
		"payment_terms": "50% advance",
		"delivery_terms": "CIF Jebel Ali",
		"line_items": [
			{"description": "Steel Coil", "quantity": 100, "unit": "kg", "unit_price": 4.8, "currency": "USD"}
		],
		"total_price": 480
	}`)

	InvoiceFields = []byte(`{
		"invoice_number": "INV-7781",
		"invoice_date": "2026-03-01",
		"invoice_from": "Emirates Steel Works",
		"currency": "AED",
		"line_items": [
			{"description": "Steel Coil", "quantity": 100, "unit": "kgs", "unit_price": 20, "total": 2000}
		],
		"total_amount": 2000
	}`)
)

// Scenario is a small trading book wired to in-memory repositories
type Scenario struct {
	Deals     *memory.DealRepository
	Quotes    *memory.QuoteRepository
	POs       *memory.CustomerPORepository
	Proposals *memory.VendorProposalRepository

	Deal         *entities.Deal
	Quote        *entities.Quote
	PO           *entities.CustomerPO
	VendorOffers []*entities.VendorProposal
}

// BuildTradingScenario seeds one deal with a linked quote, customer PO and
// three vendor proposals. It panics on fixture errors.
func BuildTradingScenario() *Scenario {
	ctx := context.Background()
	s := &Scenario{
		Deals:     memory.NewDealRepository(4),
		Quotes:    memory.NewQuoteRepository(4),
		POs:       memory.NewCustomerPORepository(4),
		Proposals: memory.NewVendorProposalRepository(4),
	}

	s.Deal = must(entities.NewDeal("DL-001", "Steel coil supply", "USD"))
	s.Deal.TotalValue = decimal.NewFromInt(1000)
	s.Deal.TotalCost = decimal.NewFromInt(800)

	dealID := s.Deal.ID
	s.Quote = must(entities.NewQuote("QT-001", "Steel coil offer", "USD", &dealID))
	s.PO = must(entities.NewCustomerPO("CPO-001", "PO-55-0912", "USD",
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), &dealID))

	offers := []struct {
		vendor   string
		price    int64
		leadTime int
	}{
		{"gulf-metals", 4800, 21},
		{"orient-steel", 5200, 10},
		{"delta-supply", 6100, 35},
	}
	for _, o := range offers {
		p := must(entities.NewVendorProposal(dealID, o.vendor, "USD"))
		price := decimal.NewFromInt(o.price)
		p.TotalPrice = &price
		p.LeadTimeDays = o.leadTime
		p.Status = entities.ProposalReceived
		s.VendorOffers = append(s.VendorOffers, p)
	}

	check(s.Deals.SaveDeal(ctx, s.Deal))
	check(s.Quotes.SaveQuote(ctx, s.Quote))
	check(s.POs.SaveCustomerPO(ctx, s.PO))
	for _, p := range s.VendorOffers {
		check(s.Proposals.SaveProposal(ctx, p))
	}
	return s
}

func must[T any](v T, err error) T {
	check(err)
	return v
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}
