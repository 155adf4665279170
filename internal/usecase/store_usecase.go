package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"agreste_marketplace/internal/domain/entities"
	"agreste_marketplace/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrStoreNotFound      = errors.New("store not found")
	ErrStoreAlreadyExists = errors.New("store already exists")
	ErrStorePaused        = errors.New("store paused")
	ErrInvalidStoreID     = errors.New("invalid store id")
	ErrInvalidStoreSlug   = errors.New("invalid store slug")
	ErrInvalidStoreName   = errors.New("invalid store name")
)

// IStoreUseCase exposes the merchant registry: creation, lookup by id or
// public slug, pause/resume, and appearance updates. The Store record is the
// single authoritative source of a loja's status.

type IStoreUseCase interface {
	Create(ctx context.Context, s entities.Store) (entities.Store, error)
	List(ctx context.Context) ([]entities.Store, error)
	GetByID(ctx context.Context, id string) (entities.Store, error)
	GetBySlug(ctx context.Context, slug string) (entities.Store, error)
	Pause(ctx context.Context, id string) (entities.Store, error)
	Resume(ctx context.Context, id string) (entities.Store, error)
	UpdateAppearance(ctx context.Context, id string, a entities.Appearance) (entities.Store, error)
}

type StoreUseCase struct {
	repo interfaces.IStoreRepository
}

var _ IStoreUseCase = (*StoreUseCase)(nil)

func NewStoreUseCase(repo interfaces.IStoreRepository) *StoreUseCase {
	return &StoreUseCase{repo: repo}
}

func (u *StoreUseCase) Create(ctx context.Context, s entities.Store) (entities.Store, error) {
	s.Name = strings.TrimSpace(s.Name)
	s.Slug = strings.ToLower(strings.TrimSpace(s.Slug))
	if s.Name == "" {
		return entities.Store{}, ErrInvalidStoreName
	}
	if s.Slug == "" {
		return entities.Store{}, ErrInvalidStoreSlug
	}

	// Enforce: one store per public slug.
	if existing, err := u.repo.GetBySlug(ctx, s.Slug); err != nil {
		return entities.Store{}, err
	} else if existing.ID != "" {
		return entities.Store{}, ErrStoreAlreadyExists
	}

	now := time.Now().UTC()
	s.ID = uuid.NewString()
	s.Status = entities.StoreStatusAtivo
	if s.PlanStatus == "" {
		s.PlanStatus = entities.PlanStatusEmDia
	}
	s.CreatedAt = now
	s.UpdatedAt = now

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		log.Printf("[store][usecase] create failed slug=%s err=%v", s.Slug, err)
		return entities.Store{}, err
	}
	log.Printf("[store][usecase] create success store_id=%s slug=%s", created.ID, created.Slug)
	return created, nil
}

func (u *StoreUseCase) List(ctx context.Context) ([]entities.Store, error) {
	return u.repo.List(ctx)
}

func (u *StoreUseCase) GetByID(ctx context.Context, id string) (entities.Store, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Store{}, ErrInvalidStoreID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Store{}, err
	}
	if s.ID == "" {
		return entities.Store{}, ErrStoreNotFound
	}
	return s, nil
}

func (u *StoreUseCase) GetBySlug(ctx context.Context, slug string) (entities.Store, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return entities.Store{}, ErrInvalidStoreSlug
	}

	s, err := u.repo.GetBySlug(ctx, slug)
	if err != nil {
		return entities.Store{}, err
	}
	if s.ID == "" {
		return entities.Store{}, ErrStoreNotFound
	}
	return s, nil
}

func (u *StoreUseCase) Pause(ctx context.Context, id string) (entities.Store, error) {
	return u.updateStatus(ctx, id, func(entities.Store) entities.StoreStatus {
		return entities.StoreStatusPausada
	})
}

// Resume derives the post-pause status from the plan health rather than
// unconditionally reactivating: late payers come back as inadimplente.
func (u *StoreUseCase) Resume(ctx context.Context, id string) (entities.Store, error) {
	return u.updateStatus(ctx, id, func(s entities.Store) entities.StoreStatus {
		switch s.PlanStatus {
		case entities.PlanStatusAtrasado:
			return entities.StoreStatusInadimplente
		case entities.PlanStatusPendente:
			return entities.StoreStatusPendente
		default:
			return entities.StoreStatusAtivo
		}
	})
}

func (u *StoreUseCase) updateStatus(ctx context.Context, id string, next func(entities.Store) entities.StoreStatus) (entities.Store, error) {
	s, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Store{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, s.ID, next(s))
	if err != nil {
		return entities.Store{}, err
	}
	if updated.ID == "" {
		return entities.Store{}, ErrStoreNotFound
	}
	log.Printf("[store][usecase] status updated store_id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}

func (u *StoreUseCase) UpdateAppearance(ctx context.Context, id string, a entities.Appearance) (entities.Store, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Store{}, ErrInvalidStoreID
	}

	updated, err := u.repo.UpdateAppearance(ctx, id, a)
	if err != nil {
		return entities.Store{}, err
	}
	if updated.ID == "" {
		return entities.Store{}, ErrStoreNotFound
	}
	return updated, nil
}
