package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vsinha/tradeops/pkg/domain/entities"
	"github.com/vsinha/tradeops/pkg/domain/repositories"
	"github.com/vsinha/tradeops/pkg/domain/services/normalizer"
	"github.com/vsinha/tradeops/pkg/domain/services/transitions"
	"github.com/vsinha/tradeops/pkg/infrastructure/events"
	"github.com/vsinha/tradeops/pkg/logger"
)

// DocumentService turns extracted documents into new or prefilled entities
type DocumentService struct {
	normalizer *normalizer.Normalizer
	deals      repositories.DealRepository
	quotes     repositories.QuoteRepository
	pos        repositories.CustomerPORepository
	status     *StatusService
	events     events.EventStore
}

// NewDocumentService creates a new document service
func NewDocumentService(
	n *normalizer.Normalizer,
	deals repositories.DealRepository,
	quotes repositories.QuoteRepository,
	pos repositories.CustomerPORepository,
	status *StatusService,
	store events.EventStore,
) *DocumentService {
	if n == nil {
		n = normalizer.New()
	}
	return &DocumentService{
		normalizer: n,
		deals:      deals,
		quotes:     quotes,
		pos:        pos,
		status:     status,
		events:     store,
	}
}

// Normalize maps a document and logs every warning
func (s *DocumentService) Normalize(ctx context.Context, doc entities.ExtractedDocument) normalizer.Result {
	res := s.normalizer.NormalizeDocument(doc)
	log := logger.FromContext(ctx)
	for _, w := range res.Warnings {
		log.Warn("Normalization warning", "category", doc.CategoryName(), "warning", w)
	}
	log.Debug("Document normalized", "category", doc.CategoryName(), "warnings", len(res.Warnings))
	return res
}

// CreateDealFromRFQ creates a deal from an RFQ document
func (s *DocumentService) CreateDealFromRFQ(ctx context.Context, doc entities.ExtractedDocument, dealNumber string) (*entities.Deal, normalizer.Result, error) {
	res := s.Normalize(ctx, doc)
	draft, ok := res.Data.(entities.DealDraft)
	if !ok {
		return nil, res, mismatch(doc, entities.EntityDeal)
	}

	description := draft.Description
	if description == "" {
		description = "RFQ " + draft.CustomerRFQRef
		if draft.CustomerRFQRef == "" {
			description = res.Category.Label()
		}
	}
	deal, err := entities.NewDeal(dealNumber, description, draft.Currency)
	if err != nil {
		return nil, res, err
	}
	deal.ApplyDraft(draft)

	if err := s.deals.SaveDeal(ctx, deal); err != nil {
		return nil, res, fmt.Errorf("failed to save deal: %w", err)
	}
	s.recordCreated(ctx, entities.EntityDeal, deal.ID, deal.DealNumber)
	s.recordNormalized(ctx, doc, res, deal.ID)
	return deal, res, nil
}

// CreateQuoteFromProposal creates a quote from a vendor proposal document.
// A quote linked to a deal moves that deal to quoted when legal.
func (s *DocumentService) CreateQuoteFromProposal(
	ctx context.Context,
	doc entities.ExtractedDocument,
	quoteNumber string,
	dealID *uuid.UUID,
) (*entities.Quote, normalizer.Result, error) {
	res := s.Normalize(ctx, doc)
	draft, ok := res.Data.(entities.QuoteDraft)
	if !ok {
		return nil, res, mismatch(doc, entities.EntityQuote)
	}

	quote, err := entities.NewQuote(quoteNumber, draft.Title, draft.Currency, dealID)
	if err != nil {
		return nil, res, err
	}
	quote.ApplyDraft(draft)

	if err := s.quotes.SaveQuote(ctx, quote); err != nil {
		return nil, res, fmt.Errorf("failed to save quote: %w", err)
	}
	s.recordCreated(ctx, entities.EntityQuote, quote.ID, quote.QuoteNumber)
	s.recordNormalized(ctx, doc, res, quote.ID)

	if dealID != nil && s.status != nil {
		trigger := events.StreamFor(entities.EntityQuote, quote.ID)
		if _, err := s.status.cascadeDeal(ctx, *dealID, trigger, func(current entities.Status) (entities.Status, bool) {
			return transitions.DealStatusForQuote(transitions.QuoteCreated, current)
		}); err != nil {
			return quote, res, err
		}
	}
	return quote, res, nil
}

// CreateCustomerPOFromInvoice creates a customer PO from an invoice document
func (s *DocumentService) CreateCustomerPOFromInvoice(
	ctx context.Context,
	doc entities.ExtractedDocument,
	internalRef string,
	poDate time.Time,
	dealID *uuid.UUID,
) (*entities.CustomerPO, normalizer.Result, error) {
	res := s.Normalize(ctx, doc)
	draft, ok := res.Data.(entities.CustomerPODraft)
	if !ok {
		return nil, res, mismatch(doc, entities.EntityCustomerPO)
	}

	po, err := entities.NewCustomerPO(internalRef, draft.PONumber, draft.Currency, poDate, dealID)
	if err != nil {
		return nil, res, err
	}
	po.ApplyDraft(draft)

	if err := s.pos.SaveCustomerPO(ctx, po); err != nil {
		return nil, res, fmt.Errorf("failed to save customer PO: %w", err)
	}
	s.recordCreated(ctx, entities.EntityCustomerPO, po.ID, po.InternalRef)
	s.recordNormalized(ctx, doc, res, po.ID)
	return po, res, nil
}

// PrefillDeal applies an RFQ to an existing deal. With field names only
// those draft fields are copied.
func (s *DocumentService) PrefillDeal(ctx context.Context, id uuid.UUID, doc entities.ExtractedDocument, fields ...string) (*entities.Deal, normalizer.Result, error) {
	res := s.Normalize(ctx, doc)
	draft, ok := res.Data.(entities.DealDraft)
	if !ok {
		return nil, res, mismatch(doc, entities.EntityDeal)
	}
	deal, err := s.deals.GetDeal(ctx, id)
	if err != nil {
		return nil, res, fmt.Errorf("failed to load deal: %w", err)
	}

	deal.ApplyDraft(draft, fields...)
	if err := s.deals.SaveDeal(ctx, deal); err != nil {
		return nil, res, fmt.Errorf("failed to save deal: %w", err)
	}
	s.recordNormalized(ctx, doc, res, deal.ID)
	return deal, res, nil
}

// PrefillQuote applies a vendor proposal to an existing quote
func (s *DocumentService) PrefillQuote(ctx context.Context, id uuid.UUID, doc entities.ExtractedDocument, fields ...string) (*entities.Quote, normalizer.Result, error) {
	res := s.Normalize(ctx, doc)
	draft, ok := res.Data.(entities.QuoteDraft)
	if !ok {
		return nil, res, mismatch(doc, entities.EntityQuote)
	}
	quote, err := s.quotes.GetQuote(ctx, id)
	if err != nil {
		return nil, res, fmt.Errorf("failed to load quote: %w", err)
	}

	quote.ApplyDraft(draft, fields...)
	if err := s.quotes.SaveQuote(ctx, quote); err != nil {
		return nil, res, fmt.Errorf("failed to save quote: %w", err)
	}
	s.recordNormalized(ctx, doc, res, quote.ID)
	return quote, res, nil
}

// PrefillCustomerPO applies an invoice to an existing customer PO
func (s *DocumentService) PrefillCustomerPO(ctx context.Context, id uuid.UUID, doc entities.ExtractedDocument, fields ...string) (*entities.CustomerPO, normalizer.Result, error) {
	res := s.Normalize(ctx, doc)
	draft, ok := res.Data.(entities.CustomerPODraft)
	if !ok {
		return nil, res, mismatch(doc, entities.EntityCustomerPO)
	}
	po, err := s.pos.GetCustomerPO(ctx, id)
	if err != nil {
		return nil, res, fmt.Errorf("failed to load customer PO: %w", err)
	}

	po.ApplyDraft(draft, fields...)
	if err := s.pos.SaveCustomerPO(ctx, po); err != nil {
		return nil, res, fmt.Errorf("failed to save customer PO: %w", err)
	}
	s.recordNormalized(ctx, doc, res, po.ID)
	return po, res, nil
}

func (s *DocumentService) recordCreated(ctx context.Context, entityType entities.EntityType, id uuid.UUID, reference string) {
	s.append(ctx, events.StreamFor(entityType, id), events.EntityCreatedEvent, events.EntityCreated{
		EntityType: entityType,
		EntityID:   id,
		Reference:  reference,
		Source:     "document",
	})
}

func (s *DocumentService) recordNormalized(ctx context.Context, doc entities.ExtractedDocument, res normalizer.Result, id uuid.UUID) {
	target := res.Data.Target()
	s.append(ctx, events.StreamFor(target, id), events.DocumentNormalizedEvent, events.DocumentNormalized{
		Category:   res.Category,
		Target:     target,
		EntityID:   id,
		Confidence: doc.Confidence,
		Warnings:   res.Warnings,
	})
}

func (s *DocumentService) append(ctx context.Context, stream, eventType string, data any) {
	if s.events == nil {
		return
	}
	if err := s.events.AppendEvent(stream, events.NewEvent(eventType, stream, data)); err != nil {
		logger.FromContext(ctx).Error("Failed to record activity", "type", eventType, "stream", stream, "error", err)
	}
}

func mismatch(doc entities.ExtractedDocument, want entities.EntityType) error {
	return fmt.Errorf("%w: %q documents do not prefill a %s", ErrCategoryMismatch, doc.CategoryName(), want)
}
