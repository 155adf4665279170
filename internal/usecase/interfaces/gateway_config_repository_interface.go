package interfaces

import (
	"context"

	"agreste_marketplace/internal/domain/entities"
)

// IGatewayConfigRepository abstracts DynamoDB persistence for GatewayConfig.
//
// One record per store; the platform-wide record (admin ceiling plus the
// administrator's own credentials) lives under a reserved store id. A zero
// StoreID on the returned value means the record is absent, which callers
// must treat differently from an empty-but-saved config.

type IGatewayConfigRepository interface {
	Save(ctx context.Context, cfg entities.GatewayConfig) (entities.GatewayConfig, error)
	GetByStoreID(ctx context.Context, storeID string) (entities.GatewayConfig, error)
}
