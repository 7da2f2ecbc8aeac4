package normalizer

import (
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"

	"github.com/vsinha/tradeops/pkg/domain/entities"
)

// common holds the values every rule resolves the same way
type common struct {
	currency string
	items    []entities.LineItem
	total    decimal.Decimal
	notes    string
}

// rule describes how one document category maps onto its target entity
type rule struct {
	target entities.EntityType
	// priceFields lists unit price keys in precedence order.
	priceFields     []string
	lineTotalFields []string
	specFields      []string
	// deliveryFallback is the top-level key used when a line has no delivery date.
	deliveryFallback string
	totalField       string
	notes            []noteField
	build            func(doc gjson.Result, c common) entities.Draft
}

var rules = map[entities.DocumentCategory]rule{
	entities.CategoryRFQ: {
		target:           entities.EntityDeal,
		priceFields:      []string{"unit_price_requested", "unit_price"},
		lineTotalFields:  []string{"total_price"},
		specFields:       []string{"specification", "material_spec"},
		deliveryFallback: "delivery_date_requested",
		totalField:       "total_value_requested",
		notes: []noteField{
			{label: "RFQ Date", key: "rfq_date"},
			{label: "Payment Terms", key: "payment_terms"},
			{label: "Delivery", key: "delivery_date_requested"},
			{label: "Customer", key: "customer_name"},
			{label: "Contact", key: "customer_contact"},
			{label: "Email", key: "customer_email"},
		},
		build: func(doc gjson.Result, c common) entities.Draft {
			return entities.DealDraft{
				CustomerRFQRef: text(doc.Get("rfq_number")),
				Description:    text(doc.Get("special_requirements")),
				Currency:       c.currency,
				LineItems:      c.items,
				TotalValue:     c.total,
				Notes:          c.notes,
			}
		},
	},
	entities.CategoryVendorProposal: {
		target:          entities.EntityQuote,
		priceFields:     []string{"unit_price"},
		lineTotalFields: []string{"total_price"},
		specFields:      []string{"specification", "material_spec"},
		totalField:      "total_price",
		notes: []noteField{
			{label: "Vendor", key: "vendor_name"},
			{label: "Proposal Date", key: "proposal_date"},
			{label: "Lead Time", key: "lead_time_days", suffix: " days"},
			{label: "Validity", key: "validity_date"},
		},
		build: func(doc gjson.Result, c common) entities.Draft {
			title := text(doc.Get("proposal_number"))
			if title == "" {
				title = "Vendor Proposal"
			}
			return entities.QuoteDraft{
				Title:         title,
				Description:   text(doc.Get("quality_guarantees")),
				LineItems:     c.items,
				TotalAmount:   c.total,
				Currency:      c.currency,
				PaymentTerms:  text(doc.Get("payment_terms")),
				DeliveryTerms: text(doc.Get("delivery_terms")),
				Notes:         c.notes,
			}
		},
	},
	entities.CategoryInvoice: {
		target:          entities.EntityCustomerPO,
		priceFields:     []string{"unit_price"},
		lineTotalFields: []string{"total", "total_price"},
		specFields:      []string{"material_spec", "specification"},
		totalField:      "total_amount",
		notes: []noteField{
			{label: "Invoice Date", key: "invoice_date"},
			{label: "From", key: "invoice_from"},
			{label: "To", key: "invoice_to"},
			{label: "Due Date", key: "due_date"},
			{label: "Payment Terms", key: "payment_terms"},
			{label: "Subtotal", key: "subtotal"},
			{label: "Tax", key: "tax_amount"},
		},
		build: func(doc gjson.Result, c common) entities.Draft {
			return entities.CustomerPODraft{
				PONumber:    text(doc.Get("invoice_number")),
				LineItems:   c.items,
				TotalAmount: c.total,
				Currency:    c.currency,
				Notes:       c.notes,
			}
		},
	},
}

// TargetFor returns the entity a category prefills
func TargetFor(category entities.DocumentCategory) (entities.EntityType, bool) {
	r, ok := rules[category]
	if !ok {
		return "", false
	}
	return r.target, true
}
