package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vsinha/tradeops/pkg/application/dto"
	"github.com/vsinha/tradeops/pkg/domain/entities"
	"github.com/vsinha/tradeops/pkg/domain/repositories"
	"github.com/vsinha/tradeops/pkg/domain/services/transitions"
	"github.com/vsinha/tradeops/pkg/infrastructure/events"
	"github.com/vsinha/tradeops/pkg/logger"
)

// StatusService performs validated status changes, cascades them onto the
// linked deal and records every change in the activity log.
type StatusService struct {
	deals     repositories.DealRepository
	quotes    repositories.QuoteRepository
	pos       repositories.CustomerPORepository
	proposals repositories.VendorProposalRepository
	events    events.EventStore
}

// NewStatusService creates a new status service
func NewStatusService(
	deals repositories.DealRepository,
	quotes repositories.QuoteRepository,
	pos repositories.CustomerPORepository,
	proposals repositories.VendorProposalRepository,
	store events.EventStore,
) *StatusService {
	return &StatusService{
		deals:     deals,
		quotes:    quotes,
		pos:       pos,
		proposals: proposals,
		events:    store,
	}
}

// ChangeDealStatus moves a deal to a new status
func (s *StatusService) ChangeDealStatus(ctx context.Context, id uuid.UUID, to entities.Status) (*dto.StatusChangeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	deal, err := s.deals.GetDeal(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load deal: %w", err)
	}

	to = entities.NormalizeStatus(string(to))
	if err := checkTransition(entities.EntityDeal, deal.Status, to); err != nil {
		return nil, err
	}

	change := dto.StatusChange{EntityType: entities.EntityDeal, EntityID: id, From: deal.Status, To: to}
	deal.SetStatus(to)
	if err := s.deals.SaveDeal(ctx, deal); err != nil {
		return nil, fmt.Errorf("failed to save deal: %w", err)
	}
	s.record(ctx, change, "")

	return &dto.StatusChangeResult{Change: change}, nil
}

// ChangeQuoteStatus moves a quote to a new status. Accepting a quote moves
// its deal to quoted when that step is legal. If the deal update fails the
// quote change stays saved and the result is returned with the error.
func (s *StatusService) ChangeQuoteStatus(ctx context.Context, id uuid.UUID, to entities.Status) (*dto.StatusChangeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	quote, err := s.quotes.GetQuote(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load quote: %w", err)
	}

	to = entities.NormalizeStatus(string(to))
	if err := checkTransition(entities.EntityQuote, quote.Status, to); err != nil {
		return nil, err
	}

	change := dto.StatusChange{EntityType: entities.EntityQuote, EntityID: id, From: quote.Status, To: to}
	quote.SetStatus(to)
	if err := s.quotes.SaveQuote(ctx, quote); err != nil {
		return nil, fmt.Errorf("failed to save quote: %w", err)
	}
	s.record(ctx, change, "")

	result := &dto.StatusChangeResult{Change: change}
	if to == entities.QuoteAccepted && quote.DealID != nil {
		cascade, err := s.cascadeDeal(ctx, *quote.DealID, events.StreamFor(entities.EntityQuote, id),
			func(current entities.Status) (entities.Status, bool) {
				return transitions.DealStatusForQuote(transitions.QuoteAccepted, current)
			})
		if err != nil {
			return result, err
		}
		result.Cascades = cascade
	}
	return result, nil
}

// ChangeCustomerPOStatus moves a customer PO to a new status and advances its
// deal along the fulfilment path where legal. A failed deal update returns
// the saved PO change together with the error.
func (s *StatusService) ChangeCustomerPOStatus(ctx context.Context, id uuid.UUID, to entities.Status) (*dto.StatusChangeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	po, err := s.pos.GetCustomerPO(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer PO: %w", err)
	}

	to = entities.NormalizeStatus(string(to))
	if err := checkTransition(entities.EntityCustomerPO, po.Status, to); err != nil {
		return nil, err
	}

	change := dto.StatusChange{EntityType: entities.EntityCustomerPO, EntityID: id, From: po.Status, To: to}
	po.SetStatus(to)
	if err := s.pos.SaveCustomerPO(ctx, po); err != nil {
		return nil, fmt.Errorf("failed to save customer PO: %w", err)
	}
	s.record(ctx, change, "")

	result := &dto.StatusChangeResult{Change: change}
	if po.DealID != nil {
		cascade, err := s.cascadeDeal(ctx, *po.DealID, events.StreamFor(entities.EntityCustomerPO, id),
			func(current entities.Status) (entities.Status, bool) {
				return transitions.DealStatusForCustomerPO(to, current)
			})
		if err != nil {
			return result, err
		}
		result.Cascades = cascade
	}
	return result, nil
}

// ChangeProposalStatus moves a vendor proposal to a new status
func (s *StatusService) ChangeProposalStatus(ctx context.Context, id uuid.UUID, to entities.Status) (*dto.StatusChangeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	proposal, err := s.proposals.GetProposal(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load vendor proposal: %w", err)
	}

	to = entities.NormalizeStatus(string(to))
	if err := checkTransition(entities.EntityVendorProposal, proposal.Status, to); err != nil {
		return nil, err
	}

	change := dto.StatusChange{EntityType: entities.EntityVendorProposal, EntityID: id, From: proposal.Status, To: to}
	proposal.SetStatus(to)
	if err := s.proposals.SaveProposal(ctx, proposal); err != nil {
		return nil, fmt.Errorf("failed to save vendor proposal: %w", err)
	}
	s.record(ctx, change, "")

	return &dto.StatusChangeResult{Change: change}, nil
}

// Options returns the current status of an entity and its legal next statuses
func (s *StatusService) Options(ctx context.Context, entityType entities.EntityType, id uuid.UUID) (*dto.StatusOptions, error) {
	current, err := s.currentStatus(ctx, entityType, id)
	if err != nil {
		return nil, err
	}
	return &dto.StatusOptions{
		EntityType: entityType,
		Current:    current,
		Allowed:    transitions.AllowedNext(entityType, current),
		Terminal:   transitions.IsTerminal(entityType, current),
	}, nil
}

func (s *StatusService) currentStatus(ctx context.Context, entityType entities.EntityType, id uuid.UUID) (entities.Status, error) {
	switch entityType {
	case entities.EntityDeal:
		deal, err := s.deals.GetDeal(ctx, id)
		if err != nil {
			return "", err
		}
		return deal.Status, nil
	case entities.EntityQuote:
		quote, err := s.quotes.GetQuote(ctx, id)
		if err != nil {
			return "", err
		}
		return quote.Status, nil
	case entities.EntityCustomerPO:
		po, err := s.pos.GetCustomerPO(ctx, id)
		if err != nil {
			return "", err
		}
		return po.Status, nil
	case entities.EntityVendorProposal:
		proposal, err := s.proposals.GetProposal(ctx, id)
		if err != nil {
			return "", err
		}
		return proposal.Status, nil
	default:
		return "", fmt.Errorf("unknown entity type: %s", entityType)
	}
}

// cascadeDeal applies an automatic deal status change chosen by next. A
// missing deal is logged and skipped.
func (s *StatusService) cascadeDeal(
	ctx context.Context,
	dealID uuid.UUID,
	trigger string,
	next func(entities.Status) (entities.Status, bool),
) ([]dto.StatusChange, error) {
	log := logger.FromContext(ctx)

	deal, err := s.deals.GetDeal(ctx, dealID)
	if errors.Is(err, repositories.ErrNotFound) {
		log.Warn("Linked deal not found, skipping status cascade", "deal_id", dealID, "trigger", trigger)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load linked deal: %w", err)
	}

	to, ok := next(deal.Status)
	if !ok {
		return nil, nil
	}

	change := dto.StatusChange{
		EntityType: entities.EntityDeal,
		EntityID:   dealID,
		From:       deal.Status,
		To:         to,
		Automatic:  true,
	}
	deal.SetStatus(to)
	if err := s.deals.SaveDeal(ctx, deal); err != nil {
		return nil, fmt.Errorf("failed to save linked deal: %w", err)
	}
	s.record(ctx, change, trigger)

	return []dto.StatusChange{change}, nil
}

// record appends the change to the entity's activity stream. Logging
// failures never undo a persisted change.
func (s *StatusService) record(ctx context.Context, change dto.StatusChange, trigger string) {
	log := logger.FromContext(ctx)
	log.Info("Status changed",
		"entity", change.EntityType,
		"id", change.EntityID,
		"from", change.From,
		"to", change.To,
		"automatic", change.Automatic,
	)
	if s.events == nil {
		return
	}

	eventType := events.StatusChangedEvent
	if change.Automatic {
		eventType = events.StatusAutoChangedEvent
	}
	stream := events.StreamFor(change.EntityType, change.EntityID)
	event := events.NewEvent(eventType, stream, events.StatusChanged{
		EntityType: change.EntityType,
		EntityID:   change.EntityID,
		From:       change.From,
		To:         change.To,
		Trigger:    trigger,
	})
	if err := s.events.AppendEvent(stream, event); err != nil {
		log.Error("Failed to record status change", "stream", stream, "error", err)
	}
}

func checkTransition(entityType entities.EntityType, from, to entities.Status) error {
	if transitions.IsLegal(entityType, from, to) {
		return nil
	}
	return fmt.Errorf("%w: %s cannot move from %s to %s", ErrIllegalTransition, entityType, from, to)
}
