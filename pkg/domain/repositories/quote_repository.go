package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/vsinha/tradeops/pkg/domain/entities"
)

// QuoteRepository provides access to quotes
type QuoteRepository interface {
	GetQuote(ctx context.Context, id uuid.UUID) (*entities.Quote, error)
	SaveQuote(ctx context.Context, quote *entities.Quote) error
	ListQuotes(ctx context.Context) ([]*entities.Quote, error)
}
