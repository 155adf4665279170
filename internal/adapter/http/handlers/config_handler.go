package handlers

import (
	"errors"
	"log"
	"net/http"

	request "agreste_marketplace/internal/adapter/http/dto/request"
	response "agreste_marketplace/internal/adapter/http/dto/response"
	"agreste_marketplace/internal/usecase"
	"agreste_marketplace/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidConfigPayload = pkg.NewDomainErrorSimple("INVALID_CONFIG_INPUT", "Invalid gateway configuration payload", http.StatusBadRequest)

// ConfigHandler handles gateway configuration for the platform (admin) and
// for individual merchants, plus the storefront checkout-options lookup.

type ConfigHandler struct {
	usecase usecase.IConfigUseCase
}

func NewConfigHandler(uc usecase.IConfigUseCase) *ConfigHandler {
	return &ConfigHandler{usecase: uc}
}

// SavePlatformConfig upserts the platform-wide gateway configuration.
func (h *ConfigHandler) SavePlatformConfig(c *gin.Context) {
	var payload request.GatewayConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfigPayload.HTTPStatus, errInvalidConfigPayload.ToHTTPError())
		return
	}

	saved, err := h.usecase.SavePlatformConfig(c.Request.Context(), payload.ToGatewayConfig())
	if err != nil {
		log.Printf("[config][handler] platform save failed err=%v", err)
		appErr := mapConfigError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGatewayConfig(saved))
}

func (h *ConfigHandler) GetPlatformConfig(c *gin.Context) {
	cfg, err := h.usecase.GetPlatformConfig(c.Request.Context())
	if err != nil {
		appErr := mapConfigError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGatewayConfig(cfg))
}

// SaveMerchantConfig upserts a merchant's gateway configuration. The store id
// comes from the route only.
func (h *ConfigHandler) SaveMerchantConfig(c *gin.Context) {
	storeID := c.Param("store_id")

	var payload request.GatewayConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfigPayload.HTTPStatus, errInvalidConfigPayload.ToHTTPError())
		return
	}

	saved, err := h.usecase.SaveMerchantConfig(c.Request.Context(), storeID, payload.ToGatewayConfig())
	if err != nil {
		log.Printf("[config][handler] save failed store_id=%s err=%v", storeID, err)
		appErr := mapConfigError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[config][handler] save success store_id=%s", storeID)

	c.JSON(http.StatusOK, response.FromGatewayConfig(saved))
}

func (h *ConfigHandler) GetMerchantConfig(c *gin.Context) {
	storeID := c.Param("store_id")

	cfg, err := h.usecase.GetMerchantConfig(c.Request.Context(), storeID)
	if err != nil {
		appErr := mapConfigError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGatewayConfig(cfg))
}

// GetCheckoutOptions resolves which payment methods the storefront may offer
// for a store. Blocked checkouts answer with a distinct code per cause.
func (h *ConfigHandler) GetCheckoutOptions(c *gin.Context) {
	storeID := c.Param("store_id")

	methods, err := h.usecase.ResolveCheckoutOptions(c.Request.Context(), storeID)
	if err != nil {
		log.Printf("[config][handler] checkout options blocked store_id=%s err=%v", storeID, err)
		appErr := mapConfigError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEnabledMethods(methods))
}

func mapConfigError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidStoreID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidGatewayConfig):
		return pkg.NewDomainErrorSimple("INVALID_GATEWAY_CONFIG", "Gateway configuration is incomplete", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEnvironment):
		return pkg.NewDomainErrorSimple("INVALID_ENVIRONMENT", "Environment must be SANDBOX or PRODUCTION", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSoftDescriptorTooLong):
		return pkg.NewDomainErrorSimple("SOFT_DESCRIPTOR_TOO_LONG", "Soft descriptor exceeds 13 characters", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrConfigNotFound):
		return pkg.NewDomainErrorSimple("CONFIG_NOT_FOUND", "Gateway configuration not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStoreNotFound):
		return pkg.NewDomainErrorSimple("STORE_NOT_FOUND", "Store not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStorePaused):
		return pkg.NewDomainErrorSimple("STORE_PAUSED", "Store is paused", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Payment gateway not configured for this store", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoPaymentMethodAvailable):
		return pkg.NewDomainErrorSimple("NO_PAYMENT_METHOD_AVAILABLE", "No payment method available for this store", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
