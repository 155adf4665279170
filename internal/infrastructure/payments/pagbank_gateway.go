package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"agreste_marketplace/internal/domain/entities"
	"agreste_marketplace/internal/domain/pagbank"
	"agreste_marketplace/internal/usecase/interfaces"
)

const (
	sandboxBaseURL    = "https://sandbox.api.pagseguro.com"
	productionBaseURL = "https://api.pagseguro.com"

	requestTimeout = 30 * time.Second
)

var ErrMissingAPIKey = errors.New("missing gateway api key")

// PagBankGateway submits orders to the PagBank REST API. The base URL follows
// the environment of the merchant configuration making the call; PAGBANK_ENDPOINT
// overrides both for local runs against a stub.
type PagBankGateway struct {
	httpClient *http.Client
	mockMode   bool
}

var _ interfaces.IPaymentGateway = (*PagBankGateway)(nil)

func NewPagBankGateway() *PagBankGateway {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &PagBankGateway{mockMode: true}
	}
	return &PagBankGateway{
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

func (g *PagBankGateway) CreateOrder(ctx context.Context, cfg entities.GatewayConfig, payload any) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[payment][gateway] payload marshal failed err=%v", err)
		return nil, err
	}

	if g.mockMode {
		return g.mockCreateOrder(body)
	}

	if cfg.APIKey == "" {
		log.Printf("[payment][gateway] missing api key")
		return nil, ErrMissingAPIKey
	}

	url := baseURLFor(cfg.Environment) + "/orders"
	log.Printf("[payment][gateway] create start environment=%s payload_len=%d", cfg.Environment, len(body))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("[payment][gateway] request failed err=%v", err)
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[payment][gateway] create rejected status=%d body_len=%d", resp.StatusCode, len(respBody))
		return nil, &interfaces.GatewayError{StatusCode: resp.StatusCode, Body: respBody}
	}

	log.Printf("[payment][gateway] create success status=%d", resp.StatusCode)
	return respBody, nil
}

// mockCreateOrder echoes the request back as a provider response, filling in
// the fields a real order creation would return for the detected method.
func (g *PagBankGateway) mockCreateOrder(body []byte) (json.RawMessage, error) {
	log.Printf("[payment][gateway] mock create start payload_len=%d", len(body))

	var req struct {
		ReferenceID string `json:"reference_id"`
		QRCodes     []struct {
			ExpirationDate string `json:"expiration_date"`
		} `json:"qr_codes"`
		Charges []struct {
			PaymentMethod struct {
				Type string `json:"type"`
			} `json:"payment_method"`
			Amount struct {
				Value int64 `json:"value"`
			} `json:"amount"`
		} `json:"charges"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	orderID := fmt.Sprintf("ORDE_%d", now.UnixNano())

	resp := pagbank.OrderResponse{
		ID:          orderID,
		ReferenceID: req.ReferenceID,
	}

	switch {
	case len(req.QRCodes) > 0:
		resp.QRCodes = []pagbank.QRCodeResponse{{
			ID:   fmt.Sprintf("QRCO_%d", now.UnixNano()),
			Text: "00020126580014br.gov.bcb.pix0136mock-qr-code-payload",
			Links: []pagbank.Link{{
				Rel:   "QRCODE.PNG",
				Href:  "https://sandbox.api.pagseguro.com/qrcode/mock.png",
				Media: "image/png",
			}},
		}}
	case len(req.Charges) > 0 && req.Charges[0].PaymentMethod.Type == "BOLETO":
		resp.Charges = []pagbank.ChargeResponse{{
			ID:     fmt.Sprintf("CHAR_%d", now.UnixNano()),
			Status: "WAITING",
			Amount: pagbank.Amount{Value: req.Charges[0].Amount.Value, Currency: "BRL"},
			PaymentMethod: pagbank.ChargePaymentMethodResponse{
				Type: "BOLETO",
				Boleto: pagbank.BoletoResponse{
					Barcode:          "03399853012970000024222500901014570340000010000",
					FormattedBarcode: "03399.85301 29700.000242 22500.901014 5 70340000010000",
					DueDate:          now.AddDate(0, 0, 3).Format("2006-01-02"),
				},
			},
			Links: []pagbank.Link{{
				Rel:   "SELF",
				Href:  "https://sandbox.api.pagseguro.com/boleto/mock.pdf",
				Media: "application/pdf",
			}},
		}}
	case len(req.Charges) > 0:
		resp.Charges = []pagbank.ChargeResponse{{
			ID:     fmt.Sprintf("CHAR_%d", now.UnixNano()),
			Status: "PAID",
			Amount: pagbank.Amount{Value: req.Charges[0].Amount.Value, Currency: "BRL"},
			PaymentResponse: pagbank.PaymentResponse{
				Code:    "20000",
				Message: "SUCESSO",
			},
			PaymentMethod: pagbank.ChargePaymentMethodResponse{Type: "CREDIT_CARD"},
		}}
	}

	out, err := json.Marshal(resp)
	if err != nil {
		return nil, err
	}
	log.Printf("[payment][gateway] mock create success order_id=%s", orderID)
	return out, nil
}

func baseURLFor(env entities.Environment) string {
	if override := strings.TrimSpace(os.Getenv("PAGBANK_ENDPOINT")); override != "" {
		return strings.TrimRight(override, "/")
	}
	if env == entities.EnvironmentProduction {
		return productionBaseURL
	}
	return sandboxBaseURL
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "PAGBANK_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
