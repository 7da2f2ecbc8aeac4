// Package procurement compares the vendor proposals received for a deal and
// plans the status changes of a vendor selection.
package procurement

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vsinha/tradeops/pkg/domain/entities"
	"github.com/vsinha/tradeops/pkg/domain/services/transitions"
)

// ComparisonItem is one proposal with its ranking flags
type ComparisonItem struct {
	ProposalID     uuid.UUID        `json:"id"`
	VendorID       string           `json:"vendor_id"`
	VendorName     string           `json:"vendor_name,omitempty"`
	TotalPrice     *decimal.Decimal `json:"total_price,omitempty"`
	Currency       string           `json:"currency"`
	LeadTimeDays   int              `json:"lead_time_days,omitempty"`
	SpecsMatch     *bool            `json:"specs_match,omitempty"`
	Discrepancies  []string         `json:"discrepancies,omitempty"`
	Status         entities.Status  `json:"status"`
	IsBestPrice    bool             `json:"is_best_price"`
	IsWorstPrice   bool             `json:"is_worst_price"`
	IsBestLeadTime bool             `json:"is_best_lead_time"`
}

// Comparison is the side-by-side view of every proposal for a deal
type Comparison struct {
	DealID        uuid.UUID        `json:"deal_id"`
	Proposals     []ComparisonItem `json:"proposals"`
	BestPrice     *decimal.Decimal `json:"best_price,omitempty"`
	WorstPrice    *decimal.Decimal `json:"worst_price,omitempty"`
	BestLeadTime  int              `json:"best_lead_time,omitempty"`
	WorstLeadTime int              `json:"worst_lead_time,omitempty"`
}

// Compare ranks the proposals of one deal. Proposals of other deals are
// ignored. Missing or zero prices and lead times never win or lose.
func Compare(dealID uuid.UUID, proposals []*entities.VendorProposal) Comparison {
	cmp := Comparison{DealID: dealID, Proposals: []ComparisonItem{}}

	var best, worst *decimal.Decimal
	for _, p := range proposals {
		if p.DealID != dealID {
			continue
		}
		if p.HasPrice() {
			if best == nil || p.TotalPrice.LessThan(*best) {
				best = p.TotalPrice
			}
			if worst == nil || p.TotalPrice.GreaterThan(*worst) {
				worst = p.TotalPrice
			}
		}
		if p.LeadTimeDays > 0 {
			if cmp.BestLeadTime == 0 || p.LeadTimeDays < cmp.BestLeadTime {
				cmp.BestLeadTime = p.LeadTimeDays
			}
			if p.LeadTimeDays > cmp.WorstLeadTime {
				cmp.WorstLeadTime = p.LeadTimeDays
			}
		}
	}
	if best != nil {
		b, w := *best, *worst
		cmp.BestPrice, cmp.WorstPrice = &b, &w
	}

	for _, p := range proposals {
		if p.DealID != dealID {
			continue
		}
		item := ComparisonItem{
			ProposalID:    p.ID,
			VendorID:      p.VendorID,
			VendorName:    p.VendorName,
			TotalPrice:    p.TotalPrice,
			Currency:      p.Currency,
			LeadTimeDays:  p.LeadTimeDays,
			SpecsMatch:    p.SpecsMatch,
			Discrepancies: p.Discrepancies,
			Status:        p.Status,
		}
		if p.HasPrice() {
			item.IsBestPrice = p.TotalPrice.Equal(*cmp.BestPrice)
			item.IsWorstPrice = p.TotalPrice.Equal(*cmp.WorstPrice)
		}
		item.IsBestLeadTime = p.LeadTimeDays > 0 && p.LeadTimeDays == cmp.BestLeadTime
		cmp.Proposals = append(cmp.Proposals, item)
	}

	return cmp
}

// Change is a planned proposal status update
type Change struct {
	ProposalID uuid.UUID
	From       entities.Status
	To         entities.Status
}

// Select plans the selection of one proposal: it becomes selected and every
// other open proposal of the same deal becomes rejected. Proposals already in a
// terminal status are left alone. Nothing is mutated.
func Select(proposals []*entities.VendorProposal, id uuid.UUID) ([]Change, error) {
	var chosen *entities.VendorProposal
	for _, p := range proposals {
		if p.ID == id {
			chosen = p
			break
		}
	}
	if chosen == nil {
		return nil, fmt.Errorf("proposal %s not found", id)
	}
	if !transitions.IsLegal(entities.EntityVendorProposal, chosen.Status, entities.ProposalSelected) {
		return nil, fmt.Errorf("proposal %s cannot be selected from status %s", id, chosen.Status)
	}

	changes := []Change{{ProposalID: chosen.ID, From: chosen.Status, To: entities.ProposalSelected}}
	for _, p := range proposals {
		if p.ID == chosen.ID || p.DealID != chosen.DealID {
			continue
		}
		if transitions.IsLegal(entities.EntityVendorProposal, p.Status, entities.ProposalRejected) {
			changes = append(changes, Change{ProposalID: p.ID, From: p.Status, To: entities.ProposalRejected})
		}
	}
	return changes, nil
}
