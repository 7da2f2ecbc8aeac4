package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vsinha/tradeops/pkg/application/dto"
	"github.com/vsinha/tradeops/pkg/domain/entities"
	"github.com/vsinha/tradeops/pkg/domain/repositories"
	"github.com/vsinha/tradeops/pkg/domain/services/procurement"
)

// ProcurementService compares vendor proposals and records vendor selection
type ProcurementService struct {
	deals     repositories.DealRepository
	proposals repositories.VendorProposalRepository
	status    *StatusService
}

// NewProcurementService creates a new procurement service
func NewProcurementService(
	deals repositories.DealRepository,
	proposals repositories.VendorProposalRepository,
	status *StatusService,
) *ProcurementService {
	return &ProcurementService{deals: deals, proposals: proposals, status: status}
}

// CompareProposals ranks every proposal received for a deal
func (s *ProcurementService) CompareProposals(ctx context.Context, dealID uuid.UUID) (procurement.Comparison, error) {
	if _, err := s.deals.GetDeal(ctx, dealID); err != nil {
		return procurement.Comparison{}, fmt.Errorf("failed to load deal: %w", err)
	}
	proposals, err := s.proposals.ListProposalsByDeal(ctx, dealID)
	if err != nil {
		return procurement.Comparison{}, fmt.Errorf("failed to list proposals: %w", err)
	}
	return procurement.Compare(dealID, proposals), nil
}

// SelectVendor marks one proposal selected and rejects the other open
// proposals of its deal. It returns every applied change.
func (s *ProcurementService) SelectVendor(ctx context.Context, proposalID uuid.UUID) ([]dto.StatusChange, error) {
	chosen, err := s.proposals.GetProposal(ctx, proposalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load vendor proposal: %w", err)
	}
	siblings, err := s.proposals.ListProposalsByDeal(ctx, chosen.DealID)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}

	plan, err := procurement.Select(siblings, proposalID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIllegalTransition, err)
	}

	applied := make([]dto.StatusChange, 0, len(plan))
	for _, step := range plan {
		res, err := s.status.ChangeProposalStatus(ctx, step.ProposalID, step.To)
		if err != nil {
			return applied, fmt.Errorf("failed to apply vendor selection: %w", err)
		}
		applied = append(applied, res.Change)
	}
	return applied, nil
}

// SelectedProposal returns the selected proposal of a deal, if any
func (s *ProcurementService) SelectedProposal(ctx context.Context, dealID uuid.UUID) (*entities.VendorProposal, bool, error) {
	proposals, err := s.proposals.ListProposalsByDeal(ctx, dealID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to list proposals: %w", err)
	}
	for _, p := range proposals {
		if p.Status == entities.ProposalSelected {
			return p, true, nil
		}
	}
	return nil, false, nil
}
