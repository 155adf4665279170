package entities

// Environment selects which PagBank base endpoint a merchant transacts
// against.

type Environment string

const (
	EnvironmentSandbox    Environment = "SANDBOX"
	EnvironmentProduction Environment = "PRODUCTION"
)

// EnabledMethods is the set of payment methods exposed at checkout.
//
// The same shape is used at two levels:
//   - platform-wide: the administrator-controlled ceiling
//   - merchant-level: the subset the lojista chooses to expose
//
// A method reaches the shopper only when both levels enable it.

type EnabledMethods struct {
	Pix    bool `json:"pix"`
	Boleto bool `json:"boleto"`
	Cartao bool `json:"cartao"`
}

// Intersect combines two levels of flags method by method. Absent records
// are represented by the zero value, so missing input always resolves to
// nothing enabled.
func (m EnabledMethods) Intersect(other EnabledMethods) EnabledMethods {
	return EnabledMethods{
		Pix:    m.Pix && other.Pix,
		Boleto: m.Boleto && other.Boleto,
		Cartao: m.Cartao && other.Cartao,
	}
}

func (m EnabledMethods) Any() bool {
	return m.Pix || m.Boleto || m.Cartao
}

func (m EnabledMethods) Allows(method PaymentMethod) bool {
	switch method {
	case PaymentMethodPix:
		return m.Pix
	case PaymentMethodBoleto:
		return m.Boleto
	case PaymentMethodCartao:
		return m.Cartao
	}
	return false
}

// GatewayConfig is the per-merchant PagBank configuration.
//
// Storage model (DynamoDB):
//   - PK: store_id
//   - the platform-wide record lives under a reserved store_id
//
// The sub-merchant fields are only meaningful when IsFacilitador is true:
// the marketplace operator collects on behalf of the seller of record.

type GatewayConfig struct {
	StoreID        string         `json:"store_id"`
	APIKey         string         `json:"api_key"`
	Environment    Environment    `json:"environment"`
	WebhookURL     string         `json:"webhook_url,omitempty"`
	SoftDescriptor string         `json:"soft_descriptor,omitempty"`
	IsFacilitador  bool           `json:"is_facilitador"`
	SubMerchant    SubMerchant    `json:"sub_merchant,omitempty"`
	EnabledMethods EnabledMethods `json:"enabled_payment_methods"`
}

type SubMerchant struct {
	TaxID       string `json:"tax_id,omitempty"`
	Name        string `json:"name,omitempty"`
	ReferenceID string `json:"reference_id,omitempty"`
	MCC         string `json:"mcc,omitempty"`
}

// IsConfigured reports whether checkout may proceed at all. Credential and
// environment are mandatory; everything else degrades gracefully.
func (c GatewayConfig) IsConfigured() bool {
	return c.APIKey != "" && c.Environment != ""
}
