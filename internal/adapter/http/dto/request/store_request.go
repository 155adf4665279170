package request

import (
	"strings"

	"agreste_marketplace/internal/domain/entities"
)

type StoreRequest struct {
	Slug       string `json:"slug" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Owner      string `json:"owner"`
	Email      string `json:"email"`
	Plan       string `json:"plan"`
	PlanStatus string `json:"plan_status"`
}

func (r StoreRequest) ToStore() entities.Store {
	return entities.Store{
		Slug:       strings.TrimSpace(r.Slug),
		Name:       strings.TrimSpace(r.Name),
		Owner:      strings.TrimSpace(r.Owner),
		Email:      strings.TrimSpace(r.Email),
		Plan:       strings.TrimSpace(r.Plan),
		PlanStatus: strings.TrimSpace(r.PlanStatus),
	}
}

type AppearanceRequest struct {
	PrimaryColor string `json:"primary_color"`
	BannerURL    string `json:"banner_url"`
	LogoURL      string `json:"logo_url"`
	Description  string `json:"description"`
}

func (r AppearanceRequest) ToAppearance() entities.Appearance {
	return entities.Appearance{
		PrimaryColor: strings.TrimSpace(r.PrimaryColor),
		BannerURL:    strings.TrimSpace(r.BannerURL),
		LogoURL:      strings.TrimSpace(r.LogoURL),
		Description:  strings.TrimSpace(r.Description),
	}
}
