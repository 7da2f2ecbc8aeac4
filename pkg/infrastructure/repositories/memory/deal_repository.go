package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/vsinha/tradeops/pkg/domain/entities"
	"github.com/vsinha/tradeops/pkg/domain/repositories"
)

// DealRepository provides in-memory deal storage
type DealRepository struct {
	store *store[entities.Deal]
}

// NewDealRepository creates a new in-memory deal repository
func NewDealRepository(expectedDeals int) *DealRepository {
	return &DealRepository{
		store: newStore("deal", expectedDeals, func(d *entities.Deal) uuid.UUID { return d.ID }, cloneDeal),
	}
}

// Verify interface compliance
var _ repositories.DealRepository = (*DealRepository)(nil)

// GetDeal returns a copy of the deal with the given id
func (r *DealRepository) GetDeal(ctx context.Context, id uuid.UUID) (*entities.Deal, error) {
	return r.store.get(ctx, id)
}

// SaveDeal validates and stores a deal, replacing any previous version
func (r *DealRepository) SaveDeal(ctx context.Context, deal *entities.Deal) error {
	return r.store.save(ctx, deal)
}

// ListDeals returns all deals in insertion order
func (r *DealRepository) ListDeals(ctx context.Context) ([]*entities.Deal, error) {
	return r.store.list(ctx, nil)
}

// Count returns the number of stored deals
func (r *DealRepository) Count() int {
	return r.store.len()
}
