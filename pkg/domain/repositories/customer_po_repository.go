package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/vsinha/tradeops/pkg/domain/entities"
)

// CustomerPORepository provides access to customer purchase orders
type CustomerPORepository interface {
	GetCustomerPO(ctx context.Context, id uuid.UUID) (*entities.CustomerPO, error)
	SaveCustomerPO(ctx context.Context, po *entities.CustomerPO) error
	ListCustomerPOs(ctx context.Context) ([]*entities.CustomerPO, error)
}
