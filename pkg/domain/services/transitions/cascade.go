package transitions

import "github.com/vsinha/tradeops/pkg/domain/entities"

// QuoteEvent is a quote change that can move its linked deal
type QuoteEvent string

const (
	QuoteCreated  QuoteEvent = "created"
	QuoteAccepted QuoteEvent = "accepted"
)

// DealStatusForQuote returns the status the linked deal should move to after a
// quote event. ok is false when the deal stays where it is.
func DealStatusForQuote(event QuoteEvent, deal entities.Status) (entities.Status, bool) {
	switch event {
	case QuoteCreated, QuoteAccepted:
		return advance(deal, entities.DealQuoted)
	default:
		return deal, false
	}
}

// DealStatusForCustomerPO returns the status the linked deal should move to
// after its customer PO reached poStatus. ok is false when the deal stays.
func DealStatusForCustomerPO(poStatus, deal entities.Status) (entities.Status, bool) {
	switch poStatus {
	case entities.CustomerPOAcknowledged:
		return advance(deal, entities.DealPOReceived)
	case entities.CustomerPOInProgress:
		switch deal {
		case entities.DealPOReceived:
			return advance(deal, entities.DealOrdered)
		case entities.DealOrdered:
			return advance(deal, entities.DealInProduction)
		}
	case entities.CustomerPOFulfilled:
		switch deal {
		case entities.DealInProduction:
			return advance(deal, entities.DealShipped)
		case entities.DealShipped:
			return advance(deal, entities.DealDelivered)
		}
	}
	return deal, false
}

func advance(from, to entities.Status) (entities.Status, bool) {
	if !IsLegal(entities.EntityDeal, from, to) {
		return from, false
	}
	return to, true
}
