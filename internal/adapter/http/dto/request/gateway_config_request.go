package request

import (
	"strings"

	"agreste_marketplace/internal/domain/entities"
)

type SubMerchantRequest struct {
	TaxID       string `json:"tax_id"`
	Name        string `json:"name"`
	ReferenceID string `json:"reference_id"`
	MCC         string `json:"mcc"`
}

type EnabledMethodsRequest struct {
	Pix    bool `json:"pix"`
	Boleto bool `json:"boleto"`
	Cartao bool `json:"cartao"`
}

// GatewayConfigRequest is shared by the platform and the merchant endpoints;
// the store id comes from the route, never from the body.
type GatewayConfigRequest struct {
	APIKey         string                `json:"api_key" binding:"required"`
	Environment    string                `json:"environment" binding:"required"`
	WebhookURL     string                `json:"webhook_url"`
	SoftDescriptor string                `json:"soft_descriptor"`
	IsFacilitador  bool                  `json:"is_facilitador"`
	SubMerchant    *SubMerchantRequest   `json:"sub_merchant"`
	EnabledMethods EnabledMethodsRequest `json:"enabled_methods"`
}

func (r GatewayConfigRequest) ToGatewayConfig() entities.GatewayConfig {
	cfg := entities.GatewayConfig{
		APIKey:         strings.TrimSpace(r.APIKey),
		Environment:    entities.Environment(strings.ToUpper(strings.TrimSpace(r.Environment))),
		WebhookURL:     strings.TrimSpace(r.WebhookURL),
		SoftDescriptor: strings.TrimSpace(r.SoftDescriptor),
		IsFacilitador:  r.IsFacilitador,
		EnabledMethods: entities.EnabledMethods{
			Pix:    r.EnabledMethods.Pix,
			Boleto: r.EnabledMethods.Boleto,
			Cartao: r.EnabledMethods.Cartao,
		},
	}
	if r.SubMerchant != nil {
		cfg.SubMerchant = entities.SubMerchant{
			TaxID:       strings.TrimSpace(r.SubMerchant.TaxID),
			Name:        strings.TrimSpace(r.SubMerchant.Name),
			ReferenceID: strings.TrimSpace(r.SubMerchant.ReferenceID),
			MCC:         strings.TrimSpace(r.SubMerchant.MCC),
		}
	}
	return cfg
}
