package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/vsinha/tradeops/pkg/domain/entities"
	"github.com/vsinha/tradeops/pkg/domain/repositories"
)

// CustomerPORepository provides in-memory customer PO storage
type CustomerPORepository struct {
	store *store[entities.CustomerPO]
}

// NewCustomerPORepository creates a new in-memory customer PO repository
func NewCustomerPORepository(expectedPOs int) *CustomerPORepository {
	return &CustomerPORepository{
		store: newStore("customer PO", expectedPOs, func(p *entities.CustomerPO) uuid.UUID { return p.ID }, cloneCustomerPO),
	}
}

var _ repositories.CustomerPORepository = (*CustomerPORepository)(nil)

// GetCustomerPO returns a copy of the PO with the given id
func (r *CustomerPORepository) GetCustomerPO(ctx context.Context, id uuid.UUID) (*entities.CustomerPO, error) {
	return r.store.get(ctx, id)
}

// SaveCustomerPO validates and stores a PO
func (r *CustomerPORepository) SaveCustomerPO(ctx context.Context, po *entities.CustomerPO) error {
	return r.store.save(ctx, po)
}

// ListCustomerPOs returns all POs in insertion order
func (r *CustomerPORepository) ListCustomerPOs(ctx context.Context) ([]*entities.CustomerPO, error) {
	return r.store.list(ctx, nil)
}
