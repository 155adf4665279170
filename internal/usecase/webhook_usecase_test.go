package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"agreste_marketplace/internal/domain/entities"
	mock_interfaces "agreste_marketplace/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestWebhookUseCase_ProcessNotification(t *testing.T) {
	ctx := context.Background()

	t.Run("charge matched and updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewWebhookUseCase(orderRepo)
		defer uc.Close()

		orderRepo.EXPECT().GetByChargeID(ctx, "CHAR_1").
			Return(entities.Order{ID: "ORDE_1", ChargeID: "CHAR_1", Status: entities.ChargeStatusWaiting}, nil)
		orderRepo.EXPECT().UpdateStatus(ctx, "ORDE_1", "CHAR_1", entities.ChargeStatusPaid).
			Return(entities.Order{ID: "ORDE_1", ChargeID: "CHAR_1", Status: entities.ChargeStatusPaid}, nil)

		notification := json.RawMessage(`{"id":"ORDE_1","charges":[{"id":"CHAR_1","status":"paid"}]}`)
		updated, err := uc.ProcessNotification(ctx, notification)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.ChargeStatusPaid {
			t.Fatalf("status = %s, want PAID", updated.Status)
		}
	})

	t.Run("pix order matched by order id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewWebhookUseCase(orderRepo)
		defer uc.Close()

		// PIX orders persist without a charge id; the first notification
		// backfills it.
		orderRepo.EXPECT().GetByChargeID(ctx, "CHAR_2").Return(entities.Order{}, nil)
		orderRepo.EXPECT().GetByID(ctx, "ORDE_2").
			Return(entities.Order{ID: "ORDE_2", Status: entities.ChargeStatusWaiting}, nil)
		orderRepo.EXPECT().UpdateStatus(ctx, "ORDE_2", "CHAR_2", entities.ChargeStatusPaid).
			Return(entities.Order{ID: "ORDE_2", ChargeID: "CHAR_2", Status: entities.ChargeStatusPaid}, nil)

		notification := json.RawMessage(`{"id":"ORDE_2","charges":[{"id":"CHAR_2","status":"PAID"}]}`)
		if _, err := uc.ProcessNotification(ctx, notification); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no matching order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewWebhookUseCase(orderRepo)
		defer uc.Close()

		orderRepo.EXPECT().GetByChargeID(ctx, "CHAR_9").Return(entities.Order{}, nil)
		orderRepo.EXPECT().GetByID(ctx, "ORDE_9").Return(entities.Order{}, nil)

		notification := json.RawMessage(`{"id":"ORDE_9","charges":[{"id":"CHAR_9","status":"PAID"}]}`)
		_, err := uc.ProcessNotification(ctx, notification)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewWebhookUseCase(mock_interfaces.NewMockIOrderRepository(ctrl))
		defer uc.Close()

		if _, err := uc.ProcessNotification(ctx, json.RawMessage(`{`)); !errors.Is(err, ErrInvalidNotification) {
			t.Fatalf("expected ErrInvalidNotification, got %v", err)
		}
		if _, err := uc.ProcessNotification(ctx, json.RawMessage(`{"id":"ORDE_1","charges":[]}`)); !errors.Is(err, ErrInvalidNotification) {
			t.Fatalf("expected ErrInvalidNotification for empty charges, got %v", err)
		}
	})

	t.Run("subscribers observe the charge event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewWebhookUseCase(orderRepo)
		defer uc.Close()

		events := make(chan entities.ChargeEvent, 1)
		if _, err := uc.Events().Hook(HookChargePaid, func(_ context.Context, ev entities.ChargeEvent) error {
			events <- ev
			return nil
		}); err != nil {
			t.Fatalf("hook registration failed: %v", err)
		}

		orderRepo.EXPECT().GetByChargeID(ctx, "CHAR_1").
			Return(entities.Order{ID: "ORDE_1", ChargeID: "CHAR_1"}, nil)
		orderRepo.EXPECT().UpdateStatus(ctx, "ORDE_1", "CHAR_1", entities.ChargeStatusPaid).
			Return(entities.Order{ID: "ORDE_1", ChargeID: "CHAR_1", Status: entities.ChargeStatusPaid}, nil)

		notification := json.RawMessage(`{"id":"ORDE_1","charges":[{"id":"CHAR_1","status":"PAID"}]}`)
		if _, err := uc.ProcessNotification(ctx, notification); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		select {
		case ev := <-events:
			if ev.OrderID != "ORDE_1" || ev.Status != entities.ChargeStatusPaid {
				t.Fatalf("unexpected event: %+v", ev)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("charge event never delivered")
		}
	})
}
