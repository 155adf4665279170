package entities

import "time"

// StoreStatus is the single authoritative lifecycle state of a loja.
//
// Domain notes:
//   - "pausada" blocks checkout entirely; the other states describe plan
//     health and are informational for the admin console.
//   - Pause/resume are explicit admin or merchant actions; there is no
//     duplicated per-page status record.

type StoreStatus string

const (
	StoreStatusAtivo        StoreStatus = "ativo"
	StoreStatusPendente     StoreStatus = "pendente"
	StoreStatusInadimplente StoreStatus = "inadimplente"
	StoreStatusPausada      StoreStatus = "pausada"
)

// PlanStatus tracks the merchant's subscription health. It feeds the store
// status derivation when a paused store is resumed.

const (
	PlanStatusEmDia    = "em dia"
	PlanStatusAtrasado = "atrasado"
	PlanStatusPendente = "pendente"
)

// Appearance is the merchant-controlled storefront styling.

type Appearance struct {
	PrimaryColor string `json:"primary_color,omitempty"`
	BannerURL    string `json:"banner_url,omitempty"`
	LogoURL      string `json:"logo_url,omitempty"`
	Description  string `json:"description,omitempty"`
}

// Store is the merchant record persisted in DynamoDB.
//
// Storage model:
//   - PK: id
//   - GSI1 (slug-index): slug, used by the public storefront
//
type Store struct {
	ID         string      `json:"id"`
	Slug       string      `json:"slug"`
	Name       string      `json:"name"`
	Owner      string      `json:"owner"`
	Email      string      `json:"email"`
	Plan       string      `json:"plan,omitempty"`
	PlanStatus string      `json:"plan_status,omitempty"`
	Status     StoreStatus `json:"status"`
	Appearance Appearance  `json:"appearance,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

func (s Store) IsPaused() bool {
	return s.Status == StoreStatusPausada
}
