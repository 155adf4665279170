package request

import (
	"strings"

	"agreste_marketplace/internal/domain/entities"
	"agreste_marketplace/internal/domain/pagbank"

	"github.com/shopspring/decimal"
)

type AddressRequest struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	PostalCode string `json:"postal_code"`
	Locality   string `json:"locality"`
	City       string `json:"city"`
	RegionCode string `json:"region_code"`
}

type CustomerRequest struct {
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	TaxID   string          `json:"tax_id"`
	Address *AddressRequest `json:"address"`
}

func (r CustomerRequest) ToCustomer() entities.Customer {
	c := entities.Customer{
		Name:  strings.TrimSpace(r.Name),
		Email: strings.TrimSpace(r.Email),
		TaxID: strings.TrimSpace(r.TaxID),
	}
	if r.Address != nil {
		c.Address = entities.Address{
			Street:     strings.TrimSpace(r.Address.Street),
			Number:     strings.TrimSpace(r.Address.Number),
			PostalCode: strings.TrimSpace(r.Address.PostalCode),
			Locality:   strings.TrimSpace(r.Address.Locality),
			City:       strings.TrimSpace(r.Address.City),
			RegionCode: strings.TrimSpace(r.Address.RegionCode),
		}
	}
	return c
}

// PixOrderRequest is the storefront checkout payload for PIX. Valor is the
// major-currency decimal exactly as typed; centavos conversion happens
// downstream.
type PixOrderRequest struct {
	Valor     decimal.Decimal `json:"valor" binding:"required"`
	Descricao string          `json:"descricao"`
	Cliente   CustomerRequest `json:"cliente"`
}

type BoletoOrderRequest struct {
	Valor          decimal.Decimal `json:"valor" binding:"required"`
	Descricao      string          `json:"descricao"`
	Cliente        CustomerRequest `json:"cliente"`
	VencimentoDias int             `json:"vencimento_dias"`
}

type CardDataRequest struct {
	EncryptedCard string `json:"encrypted_card" binding:"required"`
	SecurityCode  string `json:"security_code" binding:"required"`
	HolderName    string `json:"holder_name"`
	Installments  int    `json:"installments"`
}

type CardOrderRequest struct {
	Valor     decimal.Decimal `json:"valor" binding:"required"`
	Descricao string          `json:"descricao"`
	Cliente   CustomerRequest `json:"cliente"`
	CardData  CardDataRequest `json:"card_data" binding:"required"`
}

func (r CardOrderRequest) ToCardData() pagbank.CardData {
	return pagbank.CardData{
		EncryptedCard: strings.TrimSpace(r.CardData.EncryptedCard),
		SecurityCode:  strings.TrimSpace(r.CardData.SecurityCode),
		HolderName:    strings.TrimSpace(r.CardData.HolderName),
		Installments:  r.CardData.Installments,
	}
}
