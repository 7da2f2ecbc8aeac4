package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/vsinha/tradeops/pkg/domain/entities"
	"github.com/vsinha/tradeops/pkg/domain/repositories"
)

// QuoteRepository provides in-memory quote storage
type QuoteRepository struct {
	store *store[entities.Quote]
}

// NewQuoteRepository creates a new in-memory quote repository
func NewQuoteRepository(expectedQuotes int) *QuoteRepository {
	return &QuoteRepository{
		store: newStore("quote", expectedQuotes, func(q *entities.Quote) uuid.UUID { return q.ID }, cloneQuote),
	}
}

var _ repositories.QuoteRepository = (*QuoteRepository)(nil)

// GetQuote returns a copy of the quote with the given id
func (r *QuoteRepository) GetQuote(ctx context.Context, id uuid.UUID) (*entities.Quote, error) {
	return r.store.get(ctx, id)
}

// SaveQuote validates and stores a quote
func (r *QuoteRepository) SaveQuote(ctx context.Context, quote *entities.Quote) error {
	return r.store.save(ctx, quote)
}

// ListQuotes returns all quotes in insertion order
func (r *QuoteRepository) ListQuotes(ctx context.Context) ([]*entities.Quote, error) {
	return r.store.list(ctx, nil)
}

// ListQuotesByDeal returns the quotes linked to a deal
func (r *QuoteRepository) ListQuotesByDeal(ctx context.Context, dealID uuid.UUID) ([]*entities.Quote, error) {
	return r.store.list(ctx, func(q *entities.Quote) bool {
		return q.DealID != nil && *q.DealID == dealID
	})
}
