package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"unicode/utf8"

	"agreste_marketplace/internal/domain/entities"
	"agreste_marketplace/internal/usecase/interfaces"
)

// PlatformStoreID is the reserved key under which the platform-wide
// configuration (admin credentials plus the allowed-methods ceiling) is
// stored.
const PlatformStoreID = "platform"

// Soft descriptors longer than this are rejected by card networks.
const maxSoftDescriptorLen = 13

var (
	ErrConfigNotFound           = errors.New("gateway config not found")
	ErrInvalidGatewayConfig     = errors.New("invalid gateway config")
	ErrInvalidEnvironment       = errors.New("invalid gateway environment")
	ErrSoftDescriptorTooLong    = errors.New("soft descriptor too long")
	ErrGatewayNotConfigured     = errors.New("payment gateway not configured")
	ErrNoPaymentMethodAvailable = errors.New("no payment method available")
)

// IConfigUseCase exposes gateway configuration operations and the checkout
// options resolution used by the storefront.

type IConfigUseCase interface {
	SaveMerchantConfig(ctx context.Context, storeID string, cfg entities.GatewayConfig) (entities.GatewayConfig, error)
	GetMerchantConfig(ctx context.Context, storeID string) (entities.GatewayConfig, error)
	SavePlatformConfig(ctx context.Context, cfg entities.GatewayConfig) (entities.GatewayConfig, error)
	GetPlatformConfig(ctx context.Context) (entities.GatewayConfig, error)
	ResolveCheckoutOptions(ctx context.Context, storeID string) (entities.EnabledMethods, error)
}

type ConfigUseCase struct {
	repo      interfaces.IGatewayConfigRepository
	storeRepo interfaces.IStoreRepository
}

var _ IConfigUseCase = (*ConfigUseCase)(nil)

func NewConfigUseCase(repo interfaces.IGatewayConfigRepository, storeRepo interfaces.IStoreRepository) *ConfigUseCase {
	return &ConfigUseCase{repo: repo, storeRepo: storeRepo}
}

func (u *ConfigUseCase) SaveMerchantConfig(ctx context.Context, storeID string, cfg entities.GatewayConfig) (entities.GatewayConfig, error) {
	storeID = strings.TrimSpace(storeID)
	if storeID == "" || storeID == PlatformStoreID {
		return entities.GatewayConfig{}, ErrInvalidStoreID
	}
	if err := validateGatewayConfig(cfg); err != nil {
		return entities.GatewayConfig{}, err
	}

	cfg.StoreID = storeID
	saved, err := u.repo.Save(ctx, cfg)
	if err != nil {
		log.Printf("[config][usecase] save failed store_id=%s err=%v", storeID, err)
		return entities.GatewayConfig{}, err
	}
	log.Printf("[config][usecase] save success store_id=%s environment=%s", storeID, saved.Environment)
	return saved, nil
}

func (u *ConfigUseCase) GetMerchantConfig(ctx context.Context, storeID string) (entities.GatewayConfig, error) {
	storeID = strings.TrimSpace(storeID)
	if storeID == "" {
		return entities.GatewayConfig{}, ErrInvalidStoreID
	}

	cfg, err := u.repo.GetByStoreID(ctx, storeID)
	if err != nil {
		return entities.GatewayConfig{}, err
	}
	if cfg.StoreID == "" {
		return entities.GatewayConfig{}, ErrConfigNotFound
	}
	return cfg, nil
}

func (u *ConfigUseCase) SavePlatformConfig(ctx context.Context, cfg entities.GatewayConfig) (entities.GatewayConfig, error) {
	if err := validateGatewayConfig(cfg); err != nil {
		return entities.GatewayConfig{}, err
	}

	cfg.StoreID = PlatformStoreID
	saved, err := u.repo.Save(ctx, cfg)
	if err != nil {
		log.Printf("[config][usecase] platform save failed err=%v", err)
		return entities.GatewayConfig{}, err
	}
	log.Printf("[config][usecase] platform save success environment=%s pix=%t boleto=%t cartao=%t",
		saved.Environment, saved.EnabledMethods.Pix, saved.EnabledMethods.Boleto, saved.EnabledMethods.Cartao)
	return saved, nil
}

func (u *ConfigUseCase) GetPlatformConfig(ctx context.Context) (entities.GatewayConfig, error) {
	cfg, err := u.repo.GetByStoreID(ctx, PlatformStoreID)
	if err != nil {
		return entities.GatewayConfig{}, err
	}
	if cfg.StoreID == "" {
		return entities.GatewayConfig{}, ErrConfigNotFound
	}
	return cfg, nil
}

// ResolveCheckoutOptions decides which payment methods the storefront may
// present for a store, or why checkout is blocked: paused store, missing
// gateway configuration, or an empty final method set.
func (u *ConfigUseCase) ResolveCheckoutOptions(ctx context.Context, storeID string) (entities.EnabledMethods, error) {
	storeID = strings.TrimSpace(storeID)
	if storeID == "" {
		return entities.EnabledMethods{}, ErrInvalidStoreID
	}

	store, err := u.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return entities.EnabledMethods{}, err
	}
	if store.ID == "" {
		return entities.EnabledMethods{}, ErrStoreNotFound
	}
	if store.IsPaused() {
		return entities.EnabledMethods{}, ErrStorePaused
	}

	merchant, err := u.repo.GetByStoreID(ctx, storeID)
	if err != nil {
		return entities.EnabledMethods{}, err
	}
	platform, err := u.repo.GetByStoreID(ctx, PlatformStoreID)
	if err != nil {
		return entities.EnabledMethods{}, err
	}
	return resolveEnabledMethods(platform, merchant)
}

// resolveEnabledMethods combines the platform ceiling with the merchant's
// selection. Fail-closed: an absent platform record enables nothing, and an
// absent or incomplete merchant config blocks checkout entirely. The two
// blocked outcomes are distinguishable by sentinel.
func resolveEnabledMethods(platform, merchant entities.GatewayConfig) (entities.EnabledMethods, error) {
	if merchant.StoreID == "" || !merchant.IsConfigured() {
		return entities.EnabledMethods{}, ErrGatewayNotConfigured
	}
	final := platform.EnabledMethods.Intersect(merchant.EnabledMethods)
	if !final.Any() {
		return entities.EnabledMethods{}, ErrNoPaymentMethodAvailable
	}
	return final, nil
}

func validateGatewayConfig(cfg entities.GatewayConfig) error {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return ErrInvalidGatewayConfig
	}
	switch cfg.Environment {
	case entities.EnvironmentSandbox, entities.EnvironmentProduction:
	default:
		return ErrInvalidEnvironment
	}
	if utf8.RuneCountInString(cfg.SoftDescriptor) > maxSoftDescriptorLen {
		return ErrSoftDescriptorTooLong
	}
	return nil
}
