package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"agreste_marketplace/internal/domain/entities"
	"agreste_marketplace/internal/domain/pagbank"
	"agreste_marketplace/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrPaymentMethodNotEnabled = errors.New("payment method not enabled")
	ErrInvalidCardData         = errors.New("missing encrypted card data or security code")
)

// Checkout order inputs. Valor is the decimal major-currency value exactly
// as the storefront collected it; conversion to centavos happens here.

type PixOrderInput struct {
	Valor     decimal.Decimal
	Descricao string
	Customer  entities.Customer
}

type BoletoOrderInput struct {
	Valor          decimal.Decimal
	Descricao      string
	Customer       entities.Customer
	VencimentoDias int
}

type CardOrderInput struct {
	Valor     decimal.Decimal
	Descricao string
	Customer  entities.Customer
	Card      pagbank.CardData
}

// ICheckoutUseCase drives a checkout submission end to end: resolve the
// store's payment options, build the provider payload, submit it, normalize
// the response and persist the resulting order.

type ICheckoutUseCase interface {
	CreatePixOrder(ctx context.Context, storeID string, in PixOrderInput) (pagbank.PixResult, error)
	CreateBoletoOrder(ctx context.Context, storeID string, in BoletoOrderInput) (pagbank.BoletoResult, error)
	CreateCardOrder(ctx context.Context, storeID string, in CardOrderInput) (pagbank.CardResult, error)
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	ListStoreOrders(ctx context.Context, storeID string) ([]entities.Order, error)
}

type CheckoutUseCase struct {
	configRepo interfaces.IGatewayConfigRepository
	storeRepo  interfaces.IStoreRepository
	orderRepo  interfaces.IOrderRepository
	gateway    interfaces.IPaymentGateway
	builder    *pagbank.Builder
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	configRepo interfaces.IGatewayConfigRepository,
	storeRepo interfaces.IStoreRepository,
	orderRepo interfaces.IOrderRepository,
	gateway interfaces.IPaymentGateway,
	builder *pagbank.Builder,
) *CheckoutUseCase {
	if builder == nil {
		builder = pagbank.NewBuilder()
	}
	return &CheckoutUseCase{
		configRepo: configRepo,
		storeRepo:  storeRepo,
		orderRepo:  orderRepo,
		gateway:    gateway,
		builder:    builder,
	}
}

func (u *CheckoutUseCase) CreatePixOrder(ctx context.Context, storeID string, in PixOrderInput) (pagbank.PixResult, error) {
	cfg, err := u.prepare(ctx, storeID, entities.PaymentMethodPix)
	if err != nil {
		return pagbank.PixResult{}, err
	}
	centavos, err := pagbank.Centavos(in.Valor)
	if err != nil {
		return pagbank.PixResult{}, err
	}

	payload := u.builder.PixOrder(cfg, centavos, in.Descricao, in.Customer)
	raw, err := u.submit(ctx, cfg, storeID, entities.PaymentMethodPix, payload)
	if err != nil {
		return pagbank.PixResult{}, err
	}

	result, err := pagbank.NormalizePix(raw, payload.QRCodes[0].ExpirationDate)
	if err != nil {
		return pagbank.PixResult{}, err
	}

	if err := u.persistOrder(ctx, entities.Order{
		ID:             result.OrderID,
		StoreID:        storeID,
		ReferenceID:    result.ReferenceID,
		Method:         entities.PaymentMethodPix,
		AmountCentavos: centavos,
		Status:         entities.ChargeStatusWaiting,
		RawResponse:    raw,
	}); err != nil {
		return pagbank.PixResult{}, err
	}
	return result, nil
}

func (u *CheckoutUseCase) CreateBoletoOrder(ctx context.Context, storeID string, in BoletoOrderInput) (pagbank.BoletoResult, error) {
	cfg, err := u.prepare(ctx, storeID, entities.PaymentMethodBoleto)
	if err != nil {
		return pagbank.BoletoResult{}, err
	}
	centavos, err := pagbank.Centavos(in.Valor)
	if err != nil {
		return pagbank.BoletoResult{}, err
	}

	payload := u.builder.BoletoOrder(cfg, centavos, in.Descricao, in.Customer, in.VencimentoDias)
	raw, err := u.submit(ctx, cfg, storeID, entities.PaymentMethodBoleto, payload)
	if err != nil {
		return pagbank.BoletoResult{}, err
	}

	result, err := pagbank.NormalizeBoleto(raw)
	if err != nil {
		return pagbank.BoletoResult{}, err
	}

	if err := u.persistOrder(ctx, entities.Order{
		ID:             result.OrderID,
		StoreID:        storeID,
		ReferenceID:    result.ReferenceID,
		ChargeID:       result.ChargeID,
		Method:         entities.PaymentMethodBoleto,
		AmountCentavos: centavos,
		Status:         chargeStatusOrWaiting(result.Status),
		RawResponse:    raw,
	}); err != nil {
		return pagbank.BoletoResult{}, err
	}
	return result, nil
}

func (u *CheckoutUseCase) CreateCardOrder(ctx context.Context, storeID string, in CardOrderInput) (pagbank.CardResult, error) {
	cfg, err := u.prepare(ctx, storeID, entities.PaymentMethodCartao)
	if err != nil {
		return pagbank.CardResult{}, err
	}
	// Raw card data never reaches this service; the client encrypts.
	if in.Card.EncryptedCard == "" || in.Card.SecurityCode == "" {
		return pagbank.CardResult{}, ErrInvalidCardData
	}
	centavos, err := pagbank.Centavos(in.Valor)
	if err != nil {
		return pagbank.CardResult{}, err
	}

	payload := u.builder.CardOrder(cfg, centavos, in.Descricao, in.Customer, in.Card)
	raw, err := u.submit(ctx, cfg, storeID, entities.PaymentMethodCartao, payload)
	if err != nil {
		return pagbank.CardResult{}, err
	}

	result, err := pagbank.NormalizeCard(raw)
	if err != nil {
		return pagbank.CardResult{}, err
	}

	if err := u.persistOrder(ctx, entities.Order{
		ID:             result.OrderID,
		StoreID:        storeID,
		ReferenceID:    result.ReferenceID,
		ChargeID:       result.ChargeID,
		Method:         entities.PaymentMethodCartao,
		AmountCentavos: centavos,
		Status:         chargeStatusOrWaiting(result.Status),
		RawResponse:    raw,
	}); err != nil {
		return pagbank.CardResult{}, err
	}
	return result, nil
}

// prepare runs every pre-submission gate: store exists and is not paused,
// gateway configured, and the requested method survives the platform AND
// merchant cascade.
func (u *CheckoutUseCase) prepare(ctx context.Context, storeID string, method entities.PaymentMethod) (entities.GatewayConfig, error) {
	storeID = strings.TrimSpace(storeID)
	if storeID == "" {
		return entities.GatewayConfig{}, ErrInvalidStoreID
	}

	store, err := u.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return entities.GatewayConfig{}, err
	}
	if store.ID == "" {
		return entities.GatewayConfig{}, ErrStoreNotFound
	}
	if store.IsPaused() {
		log.Printf("[checkout][usecase] store paused store_id=%s", storeID)
		return entities.GatewayConfig{}, ErrStorePaused
	}

	merchant, err := u.configRepo.GetByStoreID(ctx, storeID)
	if err != nil {
		return entities.GatewayConfig{}, err
	}
	platform, err := u.configRepo.GetByStoreID(ctx, PlatformStoreID)
	if err != nil {
		return entities.GatewayConfig{}, err
	}

	methods, err := resolveEnabledMethods(platform, merchant)
	if err != nil {
		log.Printf("[checkout][usecase] checkout blocked store_id=%s err=%v", storeID, err)
		return entities.GatewayConfig{}, err
	}
	if !methods.Allows(method) {
		log.Printf("[checkout][usecase] method not enabled store_id=%s method=%s", storeID, method)
		return entities.GatewayConfig{}, ErrPaymentMethodNotEnabled
	}
	return merchant, nil
}

func (u *CheckoutUseCase) submit(ctx context.Context, cfg entities.GatewayConfig, storeID string, method entities.PaymentMethod, payload any) (raw []byte, err error) {
	log.Printf("[checkout][usecase] submitting order store_id=%s method=%s environment=%s", storeID, method, cfg.Environment)
	raw, err = u.gateway.CreateOrder(ctx, cfg, payload)
	if err != nil {
		log.Printf("[checkout][usecase] order submission failed store_id=%s method=%s err=%v", storeID, method, err)
		return nil, err
	}
	return raw, nil
}

func (u *CheckoutUseCase) persistOrder(ctx context.Context, o entities.Order) error {
	now := time.Now().UTC()
	o.CreatedAt = now
	o.UpdatedAt = now

	if _, err := u.orderRepo.Create(ctx, o); err != nil {
		log.Printf("[checkout][usecase] order persist failed order_id=%s store_id=%s err=%v", o.ID, o.StoreID, err)
		return err
	}
	log.Printf("[checkout][usecase] order created order_id=%s store_id=%s method=%s status=%s", o.ID, o.StoreID, o.Method, o.Status)
	return nil
}

func (u *CheckoutUseCase) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	o, err := u.orderRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *CheckoutUseCase) ListStoreOrders(ctx context.Context, storeID string) ([]entities.Order, error) {
	storeID = strings.TrimSpace(storeID)
	if storeID == "" {
		return nil, ErrInvalidStoreID
	}
	return u.orderRepo.ListByStoreID(ctx, storeID)
}

func chargeStatusOrWaiting(status string) entities.ChargeStatus {
	if status == "" {
		return entities.ChargeStatusWaiting
	}
	return entities.ChargeStatus(status)
}
