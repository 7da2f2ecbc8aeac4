// Package transitions holds the static lifecycle graphs of every entity that
// carries a status. Queries are pure lookups: an illegal or unknown transition
// is reported as false or an empty list, never as an error.
package transitions

import "github.com/vsinha/tradeops/pkg/domain/entities"

// graph is an ordered status set with the outgoing edges of each status
type graph struct {
	order []entities.Status
	next  map[entities.Status][]entities.Status
}

var graphs = map[entities.EntityType]graph{
	entities.EntityDeal: {
		order: []entities.Status{
			entities.DealRFQReceived,
			entities.DealSourcing,
			entities.DealQuoted,
			entities.DealPOReceived,
			entities.DealOrdered,
			entities.DealInProduction,
			entities.DealShipped,
			entities.DealDelivered,
			entities.DealInvoiced,
			entities.DealPaid,
			entities.DealClosed,
			entities.DealCancelled,
		},
		next: map[entities.Status][]entities.Status{
			entities.DealRFQReceived:  {entities.DealSourcing, entities.DealQuoted, entities.DealCancelled},
			entities.DealSourcing:     {entities.DealQuoted, entities.DealCancelled},
			entities.DealQuoted:       {entities.DealPOReceived, entities.DealSourcing, entities.DealCancelled},
			entities.DealPOReceived:   {entities.DealOrdered, entities.DealCancelled},
			entities.DealOrdered:      {entities.DealInProduction, entities.DealCancelled},
			entities.DealInProduction: {entities.DealShipped, entities.DealCancelled},
			entities.DealShipped:      {entities.DealDelivered, entities.DealCancelled},
			entities.DealDelivered:    {entities.DealInvoiced, entities.DealCancelled},
			entities.DealInvoiced:     {entities.DealPaid, entities.DealCancelled},
			entities.DealPaid:         {entities.DealClosed},
		},
	},
	entities.EntityQuote: {
		order: []entities.Status{
			entities.QuoteStatusDraft,
			entities.QuoteSent,
			entities.QuoteAccepted,
			entities.QuoteRejected,
			entities.QuoteExpired,
			entities.QuoteRevised,
		},
		next: map[entities.Status][]entities.Status{
			entities.QuoteStatusDraft: {entities.QuoteSent, entities.QuoteExpired},
			entities.QuoteSent:        {entities.QuoteAccepted, entities.QuoteRejected, entities.QuoteRevised, entities.QuoteExpired},
			entities.QuoteRejected:    {entities.QuoteRevised},
			entities.QuoteExpired:     {entities.QuoteRevised},
			entities.QuoteRevised:     {entities.QuoteSent},
		},
	},
	entities.EntityCustomerPO: {
		order: []entities.Status{
			entities.CustomerPOReceived,
			entities.CustomerPOAcknowledged,
			entities.CustomerPOInProgress,
			entities.CustomerPOFulfilled,
			entities.CustomerPOCancelled,
		},
		next: map[entities.Status][]entities.Status{
			entities.CustomerPOReceived:     {entities.CustomerPOAcknowledged, entities.CustomerPOCancelled},
			entities.CustomerPOAcknowledged: {entities.CustomerPOInProgress, entities.CustomerPOCancelled},
			entities.CustomerPOInProgress:   {entities.CustomerPOFulfilled, entities.CustomerPOCancelled},
		},
	},
	entities.EntityVendorProposal: {
		order: []entities.Status{
			entities.ProposalRequested,
			entities.ProposalReceived,
			entities.ProposalSelected,
			entities.ProposalRejected,
		},
		next: map[entities.Status][]entities.Status{
			entities.ProposalRequested: {entities.ProposalReceived, entities.ProposalRejected},
			entities.ProposalReceived:  {entities.ProposalSelected, entities.ProposalRejected},
		},
	},
}

// AllowedNext returns the statuses reachable in one step from current. The
// slice is a fresh copy; terminal, unknown or foreign statuses yield an empty list.
func AllowedNext(entityType entities.EntityType, current entities.Status) []entities.Status {
	g, ok := graphs[entityType]
	if !ok {
		return []entities.Status{}
	}
	edges := g.next[current]
	out := make([]entities.Status, len(edges))
	copy(out, edges)
	return out
}

// IsLegal reports whether moving from one status to another is a single legal step
func IsLegal(entityType entities.EntityType, from, to entities.Status) bool {
	g, ok := graphs[entityType]
	if !ok {
		return false
	}
	for _, s := range g.next[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Statuses returns the ordered status set of an entity type
func Statuses(entityType entities.EntityType) []entities.Status {
	g, ok := graphs[entityType]
	if !ok {
		return []entities.Status{}
	}
	out := make([]entities.Status, len(g.order))
	copy(out, g.order)
	return out
}

// IsKnown reports whether s belongs to the entity type's status set
func IsKnown(entityType entities.EntityType, s entities.Status) bool {
	g, ok := graphs[entityType]
	if !ok {
		return false
	}
	for _, candidate := range g.order {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s is a known status with no outgoing edges
func IsTerminal(entityType entities.EntityType, s entities.Status) bool {
	return IsKnown(entityType, s) && len(graphs[entityType].next[s]) == 0
}

// EntityTypes lists every entity type that has a lifecycle graph
func EntityTypes() []entities.EntityType {
	return []entities.EntityType{
		entities.EntityDeal,
		entities.EntityQuote,
		entities.EntityCustomerPO,
		entities.EntityVendorProposal,
	}
}
