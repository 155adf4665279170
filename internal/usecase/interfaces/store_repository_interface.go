package interfaces

import (
	"context"

	"agreste_marketplace/internal/domain/entities"
)

// IStoreRepository abstracts DynamoDB persistence for Store.

type IStoreRepository interface {
	Create(ctx context.Context, s entities.Store) (entities.Store, error)
	GetByID(ctx context.Context, id string) (entities.Store, error)
	GetBySlug(ctx context.Context, slug string) (entities.Store, error)
	List(ctx context.Context) ([]entities.Store, error)
	UpdateStatus(ctx context.Context, id string, status entities.StoreStatus) (entities.Store, error)
	UpdateAppearance(ctx context.Context, id string, a entities.Appearance) (entities.Store, error)
}
