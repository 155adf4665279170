package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"agreste_marketplace/internal/domain/entities"
	"agreste_marketplace/internal/usecase/interfaces"

	"github.com/zoobzio/hookz"
)

var (
	ErrInvalidNotification = errors.New("invalid webhook notification")
	ErrOrderNotFound       = errors.New("order not found")
)

// Hook keys emitted after a charge status update is applied.
const (
	HookChargePaid       hookz.Key = "charge.paid"
	HookChargeDeclined   hookz.Key = "charge.declined"
	HookChargeCanceled   hookz.Key = "charge.canceled"
	HookChargeAuthorized hookz.Key = "charge.authorized"
	HookChargeUpdated    hookz.Key = "charge.updated"
)

// WebhookNotification is the provider-pushed status update shape.

type WebhookNotification struct {
	ID          string          `json:"id"`
	ReferenceID string          `json:"reference_id"`
	Charges     []WebhookCharge `json:"charges"`
}

type WebhookCharge struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// IWebhookUseCase applies provider-pushed charge updates to persisted
// orders and fans the resulting events out to in-process subscribers.

type IWebhookUseCase interface {
	ProcessNotification(ctx context.Context, raw json.RawMessage) (entities.Order, error)
	Events() *hookz.Hooks[entities.ChargeEvent]
	Close() error
}

type WebhookUseCase struct {
	orderRepo interfaces.IOrderRepository
	hooks     *hookz.Hooks[entities.ChargeEvent]
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(orderRepo interfaces.IOrderRepository) *WebhookUseCase {
	return &WebhookUseCase{
		orderRepo: orderRepo,
		hooks:     hookz.New[entities.ChargeEvent](),
	}
}

// Events exposes the hook service so subscribers (order dashboards,
// notification senders) can register for charge status changes.
func (u *WebhookUseCase) Events() *hookz.Hooks[entities.ChargeEvent] {
	return u.hooks
}

func (u *WebhookUseCase) Close() error {
	return u.hooks.Close()
}

// ProcessNotification matches the notification's first charge to a
// persisted order — by charge id, falling back to the order id for PIX
// orders created without a charge — and applies the new status.
func (u *WebhookUseCase) ProcessNotification(ctx context.Context, raw json.RawMessage) (entities.Order, error) {
	var n WebhookNotification
	if err := json.Unmarshal(raw, &n); err != nil {
		log.Printf("[webhook][usecase] notification unmarshal failed err=%v", err)
		return entities.Order{}, ErrInvalidNotification
	}
	if len(n.Charges) == 0 {
		log.Printf("[webhook][usecase] notification without charges order_id=%s", n.ID)
		return entities.Order{}, ErrInvalidNotification
	}

	charge := n.Charges[0]
	status := entities.ChargeStatus(strings.ToUpper(strings.TrimSpace(charge.Status)))
	log.Printf("[webhook][usecase] notification received order_id=%s charge_id=%s status=%s", n.ID, charge.ID, status)

	order, err := u.orderRepo.GetByChargeID(ctx, charge.ID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" && n.ID != "" {
		order, err = u.orderRepo.GetByID(ctx, n.ID)
		if err != nil {
			return entities.Order{}, err
		}
	}
	if order.ID == "" {
		log.Printf("[webhook][usecase] no matching order charge_id=%s order_id=%s", charge.ID, n.ID)
		return entities.Order{}, ErrOrderNotFound
	}

	updated, err := u.orderRepo.UpdateStatus(ctx, order.ID, charge.ID, status)
	if err != nil {
		log.Printf("[webhook][usecase] status update failed order_id=%s err=%v", order.ID, err)
		return entities.Order{}, err
	}
	log.Printf("[webhook][usecase] status updated order_id=%s charge_id=%s status=%s", updated.ID, charge.ID, status)

	event := entities.ChargeEvent{
		OrderID:    updated.ID,
		ChargeID:   charge.ID,
		Status:     status,
		ReceivedAt: time.Now().UTC(),
	}
	if err := u.hooks.Emit(ctx, hookKeyForStatus(status), event); err != nil {
		// Subscribers are best effort; a full queue never fails the webhook.
		log.Printf("[webhook][usecase] event emit failed order_id=%s err=%v", updated.ID, err)
	}
	return updated, nil
}

func hookKeyForStatus(status entities.ChargeStatus) hookz.Key {
	switch status {
	case entities.ChargeStatusPaid:
		return HookChargePaid
	case entities.ChargeStatusDeclined:
		return HookChargeDeclined
	case entities.ChargeStatusCanceled:
		return HookChargeCanceled
	case entities.ChargeStatusAuthorized:
		return HookChargeAuthorized
	default:
		return HookChargeUpdated
	}
}
