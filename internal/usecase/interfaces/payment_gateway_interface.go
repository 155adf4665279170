package interfaces

import (
	"context"
	"encoding/json"
	"fmt"

	"agreste_marketplace/internal/domain/entities"
)

// IPaymentGateway abstracts the PagBank orders API. The merchant's
// GatewayConfig selects the environment and carries the credential; payload
// is one of the pagbank order payload variants.
//
// Submission is at most once per call: the gateway never retries.

type IPaymentGateway interface {
	CreateOrder(ctx context.Context, cfg entities.GatewayConfig, payload any) (json.RawMessage, error)
}

// GatewayError is returned when the provider answers with a non-2xx status.
// Body carries the raw provider response for diagnostics.

type GatewayError struct {
	StatusCode int
	Body       json.RawMessage
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("pagbank order creation failed: status=%d body=%s", e.StatusCode, string(e.Body))
}
