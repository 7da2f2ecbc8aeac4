package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/vsinha/tradeops/pkg/domain/entities"
	"github.com/vsinha/tradeops/pkg/domain/repositories"
)

// VendorProposalRepository provides in-memory vendor proposal storage
type VendorProposalRepository struct {
	store *store[entities.VendorProposal]
}

// NewVendorProposalRepository creates a new in-memory proposal repository
func NewVendorProposalRepository(expectedProposals int) *VendorProposalRepository {
	return &VendorProposalRepository{
		store: newStore("vendor proposal", expectedProposals,
			func(p *entities.VendorProposal) uuid.UUID { return p.ID }, cloneProposal),
	}
}

var _ repositories.VendorProposalRepository = (*VendorProposalRepository)(nil)

// GetProposal returns a copy of the proposal with the given id
func (r *VendorProposalRepository) GetProposal(ctx context.Context, id uuid.UUID) (*entities.VendorProposal, error) {
	return r.store.get(ctx, id)
}

// SaveProposal validates and stores a proposal
func (r *VendorProposalRepository) SaveProposal(ctx context.Context, proposal *entities.VendorProposal) error {
	return r.store.save(ctx, proposal)
}

// ListProposalsByDeal returns the proposals of a deal in insertion order
func (r *VendorProposalRepository) ListProposalsByDeal(ctx context.Context, dealID uuid.UUID) ([]*entities.VendorProposal, error) {
	return r.store.list(ctx, func(p *entities.VendorProposal) bool {
		return p.DealID == dealID
	})
}
