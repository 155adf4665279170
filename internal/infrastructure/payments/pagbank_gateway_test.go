package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"agreste_marketplace/internal/domain/entities"
	"agreste_marketplace/internal/domain/pagbank"
	"agreste_marketplace/internal/usecase/interfaces"
)

func testGatewayConfig() entities.GatewayConfig {
	return entities.GatewayConfig{
		StoreID:     "store-1",
		APIKey:      "test-token",
		Environment: entities.EnvironmentSandbox,
	}
}

func TestPagBankGateway_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("posts order with bearer auth", func(t *testing.T) {
		var gotAuth, gotPath, gotMethod string
		var gotBody map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotPath = r.URL.Path
			gotMethod = r.Method
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"ORDE_1","reference_id":"PIX-1"}`))
		}))
		defer srv.Close()
		t.Setenv("PAGBANK_ENDPOINT", srv.URL)

		g := NewPagBankGateway()
		raw, err := g.CreateOrder(ctx, testGatewayConfig(), map[string]any{"reference_id": "PIX-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if gotMethod != http.MethodPost || gotPath != "/orders" {
			t.Fatalf("request = %s %s, want POST /orders", gotMethod, gotPath)
		}
		if gotAuth != "Bearer test-token" {
			t.Fatalf("authorization = %q", gotAuth)
		}
		if gotBody["reference_id"] != "PIX-1" {
			t.Fatalf("payload not forwarded: %v", gotBody)
		}

		var resp pagbank.OrderResponse
		if err := json.Unmarshal(raw, &resp); err != nil {
			t.Fatalf("response not raw provider json: %v", err)
		}
		if resp.ID != "ORDE_1" {
			t.Fatalf("order id = %s", resp.ID)
		}
	})

	t.Run("provider rejection surfaces status and body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error_messages":[{"code":"40002","description":"invalid_parameter"}]}`))
		}))
		defer srv.Close()
		t.Setenv("PAGBANK_ENDPOINT", srv.URL)

		g := NewPagBankGateway()
		_, err := g.CreateOrder(ctx, testGatewayConfig(), map[string]any{"reference_id": "PIX-1"})

		var gwErr *interfaces.GatewayError
		if !errors.As(err, &gwErr) {
			t.Fatalf("expected GatewayError, got %v", err)
		}
		if gwErr.StatusCode != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", gwErr.StatusCode)
		}
		if !json.Valid(gwErr.Body) {
			t.Fatalf("provider body lost: %s", gwErr.Body)
		}
	})

	t.Run("missing api key fails before the network", func(t *testing.T) {
		g := NewPagBankGateway()
		cfg := testGatewayConfig()
		cfg.APIKey = ""
		if _, err := g.CreateOrder(ctx, cfg, map[string]any{}); !errors.Is(err, ErrMissingAPIKey) {
			t.Fatalf("expected ErrMissingAPIKey, got %v", err)
		}
	})
}

func TestPagBankGateway_MockMode(t *testing.T) {
	ctx := context.Background()
	t.Setenv("PAYMENT_GATEWAY_MOCK", "1")

	g := NewPagBankGateway()
	if !g.mockMode {
		t.Fatalf("mock mode not enabled")
	}

	t.Run("pix order gets a qr code", func(t *testing.T) {
		payload := map[string]any{
			"reference_id": "PIX-1",
			"qr_codes":     []map[string]any{{"expiration_date": "2026-09-02T12:00:00Z"}},
		}
		raw, err := g.CreateOrder(ctx, testGatewayConfig(), payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var resp pagbank.OrderResponse
		_ = json.Unmarshal(raw, &resp)
		if len(resp.QRCodes) != 1 || resp.QRCodes[0].Text == "" {
			t.Fatalf("mock pix response missing qr code: %s", raw)
		}
	})

	t.Run("boleto order gets a barcode and pdf link", func(t *testing.T) {
		payload := map[string]any{
			"reference_id": "BOL-1",
			"charges": []map[string]any{{
				"payment_method": map[string]any{"type": "BOLETO"},
				"amount":         map[string]any{"value": 15000},
			}},
		}
		raw, err := g.CreateOrder(ctx, testGatewayConfig(), payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var resp pagbank.OrderResponse
		_ = json.Unmarshal(raw, &resp)
		if len(resp.Charges) != 1 {
			t.Fatalf("mock boleto response missing charge: %s", raw)
		}
		charge := resp.Charges[0]
		if charge.PaymentMethod.Boleto.Barcode == "" {
			t.Fatalf("barcode missing: %s", raw)
		}
		if charge.Amount.Value != 15000 {
			t.Fatalf("amount not echoed: %d", charge.Amount.Value)
		}
	})

	t.Run("card order is approved", func(t *testing.T) {
		payload := map[string]any{
			"reference_id": "CARD-1",
			"charges": []map[string]any{{
				"payment_method": map[string]any{"type": "CREDIT_CARD"},
				"amount":         map[string]any{"value": 25000},
			}},
		}
		raw, err := g.CreateOrder(ctx, testGatewayConfig(), payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var resp pagbank.OrderResponse
		_ = json.Unmarshal(raw, &resp)
		if len(resp.Charges) != 1 || resp.Charges[0].Status != "PAID" {
			t.Fatalf("mock card response not approved: %s", raw)
		}
	})
}

func TestBaseURLFor(t *testing.T) {
	t.Setenv("PAGBANK_ENDPOINT", "")

	if got := baseURLFor(entities.EnvironmentSandbox); got != sandboxBaseURL {
		t.Fatalf("sandbox url = %s", got)
	}
	if got := baseURLFor(entities.EnvironmentProduction); got != productionBaseURL {
		t.Fatalf("production url = %s", got)
	}

	t.Setenv("PAGBANK_ENDPOINT", "http://localhost:4000/")
	if got := baseURLFor(entities.EnvironmentProduction); got != "http://localhost:4000" {
		t.Fatalf("override url = %s", got)
	}
}
