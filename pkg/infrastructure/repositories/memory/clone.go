package memory

import (
	"slices"

	"github.com/google/uuid"

	"github.com/vsinha/tradeops/pkg/domain/entities"
)

func cloneUUID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

func cloneDeal(d *entities.Deal) *entities.Deal {
	c := *d
	c.LineItems = slices.Clone(d.LineItems)
	return &c
}

func cloneQuote(q *entities.Quote) *entities.Quote {
	c := *q
	c.DealID = cloneUUID(q.DealID)
	c.LineItems = slices.Clone(q.LineItems)
	return &c
}

func cloneCustomerPO(p *entities.CustomerPO) *entities.CustomerPO {
	c := *p
	c.DealID = cloneUUID(p.DealID)
	c.QuoteID = cloneUUID(p.QuoteID)
	c.LineItems = slices.Clone(p.LineItems)
	if p.DeliveryDate != nil {
		d := *p.DeliveryDate
		c.DeliveryDate = &d
	}
	return &c
}

func cloneProposal(p *entities.VendorProposal) *entities.VendorProposal {
	c := *p
	c.LineItems = slices.Clone(p.LineItems)
	c.Discrepancies = slices.Clone(p.Discrepancies)
	if p.TotalPrice != nil {
		v := *p.TotalPrice
		c.TotalPrice = &v
	}
	if p.ValidityDate != nil {
		v := *p.ValidityDate
		c.ValidityDate = &v
	}
	if p.SpecsMatch != nil {
		v := *p.SpecsMatch
		c.SpecsMatch = &v
	}
	return &c
}
