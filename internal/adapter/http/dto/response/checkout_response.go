package response

import (
	"agreste_marketplace/internal/domain/entities"
	"agreste_marketplace/internal/domain/pagbank"
	"time"
)

// Success envelopes for the three checkout variants. All carry success=true;
// failures go through the shared error envelope instead.

type PixOrderResponse struct {
	Success        bool   `json:"success"`
	OrderID        string `json:"order_id"`
	ReferenceID    string `json:"reference_id"`
	QRCodeText     string `json:"qr_code_text"`
	QRCodeImage    string `json:"qr_code_image,omitempty"`
	ExpirationDate string `json:"expiration_date"`
}

func FromPixResult(r pagbank.PixResult) PixOrderResponse {
	return PixOrderResponse{
		Success:        true,
		OrderID:        r.OrderID,
		ReferenceID:    r.ReferenceID,
		QRCodeText:     r.QRCodeText,
		QRCodeImage:    r.QRCodeImage,
		ExpirationDate: r.ExpirationDate,
	}
}

type BoletoOrderResponse struct {
	Success          bool   `json:"success"`
	OrderID          string `json:"order_id"`
	ChargeID         string `json:"charge_id"`
	ReferenceID      string `json:"reference_id"`
	Barcode          string `json:"barcode"`
	FormattedBarcode string `json:"formatted_barcode"`
	BoletoURL        string `json:"boleto_url,omitempty"`
	DueDate          string `json:"due_date"`
	Status           string `json:"status"`
}

func FromBoletoResult(r pagbank.BoletoResult) BoletoOrderResponse {
	return BoletoOrderResponse{
		Success:          true,
		OrderID:          r.OrderID,
		ChargeID:         r.ChargeID,
		ReferenceID:      r.ReferenceID,
		Barcode:          r.Barcode,
		FormattedBarcode: r.FormattedBarcode,
		BoletoURL:        r.BoletoURL,
		DueDate:          r.DueDate,
		Status:           r.Status,
	}
}

type CardOrderResponse struct {
	Success         bool                    `json:"success"`
	OrderID         string                  `json:"order_id"`
	ChargeID        string                  `json:"charge_id"`
	ReferenceID     string                  `json:"reference_id"`
	Status          string                  `json:"status"`
	Amount          pagbank.Amount          `json:"amount"`
	PaymentResponse pagbank.PaymentResponse `json:"payment_response"`
}

func FromCardResult(r pagbank.CardResult) CardOrderResponse {
	return CardOrderResponse{
		Success:         true,
		OrderID:         r.OrderID,
		ChargeID:        r.ChargeID,
		ReferenceID:     r.ReferenceID,
		Status:          r.Status,
		Amount:          r.Amount,
		PaymentResponse: r.PaymentResponse,
	}
}

type CheckoutOptionsResponse struct {
	Success bool `json:"success"`
	Pix     bool `json:"pix"`
	Boleto  bool `json:"boleto"`
	Cartao  bool `json:"cartao"`
}

func FromEnabledMethods(m entities.EnabledMethods) CheckoutOptionsResponse {
	return CheckoutOptionsResponse{
		Success: true,
		Pix:     m.Pix,
		Boleto:  m.Boleto,
		Cartao:  m.Cartao,
	}
}

type OrderResponse struct {
	ID             string    `json:"id"`
	StoreID        string    `json:"store_id"`
	ReferenceID    string    `json:"reference_id,omitempty"`
	ChargeID       string    `json:"charge_id,omitempty"`
	Method         string    `json:"method"`
	AmountCentavos int64     `json:"amount_centavos"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:             o.ID,
		StoreID:        o.StoreID,
		ReferenceID:    o.ReferenceID,
		ChargeID:       o.ChargeID,
		Method:         string(o.Method),
		AmountCentavos: o.AmountCentavos,
		Status:         string(o.Status),
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
