package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/vsinha/tradeops/pkg/domain/entities"
)

// DealRepository provides access to deals
type DealRepository interface {
	GetDeal(ctx context.Context, id uuid.UUID) (*entities.Deal, error)
	SaveDeal(ctx context.Context, deal *entities.Deal) error
	ListDeals(ctx context.Context) ([]*entities.Deal, error)
}
