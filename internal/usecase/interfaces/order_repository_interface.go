package interfaces

import (
	"context"

	"agreste_marketplace/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for provider orders.
//
// The webhook receiver resolves orders by charge id; PIX orders are created
// without a charge, so UpdateStatus also attaches the charge id when it
// first appears.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByChargeID(ctx context.Context, chargeID string) (entities.Order, error)
	ListByStoreID(ctx context.Context, storeID string) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id, chargeID string, status entities.ChargeStatus) (entities.Order, error)
}
