package response

import (
	"agreste_marketplace/internal/domain/entities"
)

type SubMerchantResponse struct {
	TaxID       string `json:"tax_id"`
	Name        string `json:"name"`
	ReferenceID string `json:"reference_id"`
	MCC         string `json:"mcc"`
}

type EnabledMethodsResponse struct {
	Pix    bool `json:"pix"`
	Boleto bool `json:"boleto"`
	Cartao bool `json:"cartao"`
}

// GatewayConfigResponse masks the API key: configuration reads confirm a key
// is present without ever echoing credentials back.
type GatewayConfigResponse struct {
	StoreID        string                 `json:"store_id"`
	HasAPIKey      bool                   `json:"has_api_key"`
	Environment    string                 `json:"environment"`
	WebhookURL     string                 `json:"webhook_url,omitempty"`
	SoftDescriptor string                 `json:"soft_descriptor,omitempty"`
	IsFacilitador  bool                   `json:"is_facilitador"`
	SubMerchant    *SubMerchantResponse   `json:"sub_merchant,omitempty"`
	EnabledMethods EnabledMethodsResponse `json:"enabled_methods"`
}

func FromGatewayConfig(cfg entities.GatewayConfig) GatewayConfigResponse {
	resp := GatewayConfigResponse{
		StoreID:        cfg.StoreID,
		HasAPIKey:      cfg.APIKey != "",
		Environment:    string(cfg.Environment),
		WebhookURL:     cfg.WebhookURL,
		SoftDescriptor: cfg.SoftDescriptor,
		IsFacilitador:  cfg.IsFacilitador,
		EnabledMethods: EnabledMethodsResponse{
			Pix:    cfg.EnabledMethods.Pix,
			Boleto: cfg.EnabledMethods.Boleto,
			Cartao: cfg.EnabledMethods.Cartao,
		},
	}
	if cfg.SubMerchant.TaxID != "" || cfg.SubMerchant.Name != "" {
		resp.SubMerchant = &SubMerchantResponse{
			TaxID:       cfg.SubMerchant.TaxID,
			Name:        cfg.SubMerchant.Name,
			ReferenceID: cfg.SubMerchant.ReferenceID,
			MCC:         cfg.SubMerchant.MCC,
		}
	}
	return resp
}
