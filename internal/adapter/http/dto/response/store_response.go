package response

import (
	"agreste_marketplace/internal/domain/entities"
	"time"
)

type AppearanceResponse struct {
	PrimaryColor string `json:"primary_color,omitempty"`
	BannerURL    string `json:"banner_url,omitempty"`
	LogoURL      string `json:"logo_url,omitempty"`
	Description  string `json:"description,omitempty"`
}

type StoreResponse struct {
	ID         string             `json:"id"`
	Slug       string             `json:"slug"`
	Name       string             `json:"name"`
	Owner      string             `json:"owner,omitempty"`
	Email      string             `json:"email,omitempty"`
	Plan       string             `json:"plan,omitempty"`
	PlanStatus string             `json:"plan_status,omitempty"`
	Status     string             `json:"status"`
	Appearance AppearanceResponse `json:"appearance"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func FromStore(s entities.Store) StoreResponse {
	return StoreResponse{
		ID:         s.ID,
		Slug:       s.Slug,
		Name:       s.Name,
		Owner:      s.Owner,
		Email:      s.Email,
		Plan:       s.Plan,
		PlanStatus: s.PlanStatus,
		Status:     string(s.Status),
		Appearance: AppearanceResponse{
			PrimaryColor: s.Appearance.PrimaryColor,
			BannerURL:    s.Appearance.BannerURL,
			LogoURL:      s.Appearance.LogoURL,
			Description:  s.Appearance.Description,
		},
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func FromStores(stores []entities.Store) []StoreResponse {
	out := make([]StoreResponse, 0, len(stores))
	for _, s := range stores {
		out = append(out, FromStore(s))
	}
	return out
}
