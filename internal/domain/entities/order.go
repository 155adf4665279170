package entities

import (
	"encoding/json"
	"time"
)

// PaymentMethod is the checkout variant chosen by the shopper.

type PaymentMethod string

const (
	PaymentMethodPix    PaymentMethod = "pix"
	PaymentMethodBoleto PaymentMethod = "boleto"
	PaymentMethodCartao PaymentMethod = "cartao"
)

// ChargeStatus mirrors the provider's charge status strings. PIX orders are
// created without a charge, so they start as WAITING until the webhook
// attaches one.

type ChargeStatus string

const (
	ChargeStatusWaiting    ChargeStatus = "WAITING"
	ChargeStatusAuthorized ChargeStatus = "AUTHORIZED"
	ChargeStatusPaid       ChargeStatus = "PAID"
	ChargeStatusDeclined   ChargeStatus = "DECLINED"
	ChargeStatusCanceled   ChargeStatus = "CANCELED"
)

// Order is the persisted record of a provider order created at checkout.
//
// Storage model (DynamoDB):
//   - PK: id (provider order id)
//   - GSI1 (charge_id-index): charge_id, used by the webhook receiver
//   - GSI2 (store_id-index): store_id, used for per-store listings
//
// Provider payload:
//   - RawResponse keeps the original body (JSON) for traceability/audit.

type Order struct {
	ID             string        `json:"id"`
	StoreID        string        `json:"store_id"`
	ReferenceID    string        `json:"reference_id"`
	ChargeID       string        `json:"charge_id,omitempty"`
	Method         PaymentMethod `json:"method"`
	AmountCentavos int64         `json:"amount_centavos"`
	Status         ChargeStatus  `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`

	RawResponse json.RawMessage `json:"raw_response,omitempty"`
}

// ChargeEvent is emitted to in-process subscribers whenever the webhook
// receiver applies a provider status update.

type ChargeEvent struct {
	OrderID    string       `json:"order_id"`
	ChargeID   string       `json:"charge_id"`
	Status     ChargeStatus `json:"status"`
	ReceivedAt time.Time    `json:"received_at"`
}
