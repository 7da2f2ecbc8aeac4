package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/vsinha/tradeops/pkg/domain/entities"
)

// VendorProposalRepository provides access to vendor proposals
type VendorProposalRepository interface {
	GetProposal(ctx context.Context, id uuid.UUID) (*entities.VendorProposal, error)
	SaveProposal(ctx context.Context, proposal *entities.VendorProposal) error
	// ListProposalsByDeal returns the proposals of a deal in creation order.
	ListProposalsByDeal(ctx context.Context, dealID uuid.UUID) ([]*entities.VendorProposal, error)
}
