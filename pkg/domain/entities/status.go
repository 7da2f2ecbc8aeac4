package entities

import "strings"

// EntityType identifies a business object that carries a lifecycle status
type EntityType string

const (
	EntityDeal           EntityType = "deal"
	EntityQuote          EntityType = "quote"
	EntityCustomerPO     EntityType = "customer_po"
	EntityVendorProposal EntityType = "vendor_proposal"
)

// String method for EntityType
func (e EntityType) String() string {
	return string(e)
}

// ParseEntityType maps any accepted spelling ("Deal", "customer_po", "CustomerPO",
// "customer-po", "VENDOR_PROPOSAL") to its EntityType.
func ParseEntityType(s string) (EntityType, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("_", "", "-", "", " ", "").Replace(key)

	switch key {
	case "deal":
		return EntityDeal, true
	case "quote":
		return EntityQuote, true
	case "customerpo", "po", "purchaseorder":
		return EntityCustomerPO, true
	case "vendorproposal", "proposal":
		return EntityVendorProposal, true
	default:
		return "", false
	}
}

// Status is a lifecycle state. Values are lowercase snake case and shared
// across entity types where the name coincides (e.g. "cancelled").
type Status string

// String method for Status
func (s Status) String() string {
	return string(s)
}

// NormalizeStatus folds case and surrounding whitespace so "PAID" and "paid"
// name the same status.
func NormalizeStatus(s string) Status {
	return Status(strings.ToLower(strings.TrimSpace(s)))
}

// Deal statuses
const (
	DealRFQReceived  Status = "rfq_received"
	DealSourcing     Status = "sourcing"
	DealQuoted       Status = "quoted"
	DealPOReceived   Status = "po_received"
	DealOrdered      Status = "ordered"
	DealInProduction Status = "in_production"
	DealShipped      Status = "shipped"
	DealDelivered    Status = "delivered"
	DealInvoiced     Status = "invoiced"
	DealPaid         Status = "paid"
	DealClosed       Status = "closed"
	DealCancelled    Status = "cancelled"
)

// Quote statuses
const (
	QuoteStatusDraft Status = "draft"
	QuoteSent        Status = "sent"
	QuoteAccepted    Status = "accepted"
	QuoteRejected    Status = "rejected"
	QuoteExpired     Status = "expired"
	QuoteRevised     Status = "revised"
)

// Customer PO statuses
const (
	CustomerPOReceived     Status = "received"
	CustomerPOAcknowledged Status = "acknowledged"
	CustomerPOInProgress   Status = "in_progress"
	CustomerPOFulfilled    Status = "fulfilled"
	CustomerPOCancelled    Status = "cancelled"
)

// Vendor proposal statuses
const (
	ProposalRequested Status = "requested"
	ProposalReceived  Status = "received"
	ProposalSelected  Status = "selected"
	ProposalRejected  Status = "rejected"
)

// InitialStatus returns the status a freshly created entity starts in.
func InitialStatus(e EntityType) Status {
	switch e {
	case EntityDeal:
		return DealRFQReceived
	case EntityQuote:
		return QuoteStatusDraft
	case EntityCustomerPO:
		return CustomerPOReceived
	case EntityVendorProposal:
		return ProposalRequested
	default:
		return ""
	}
}
