package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"agreste_marketplace/internal/usecase"
	"agreste_marketplace/pkg"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives provider-pushed charge notifications.
//
// The provider retries on non-2xx answers, so only a malformed body earns a
// 400: an unknown order is acknowledged with 200 and dropped.

type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

func (h *WebhookHandler) ReceiveNotification(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil || len(raw) == 0 || !json.Valid(raw) {
		appErr := pkg.NewDomainErrorSimple("INVALID_NOTIFICATION", "Invalid notification body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.ProcessNotification(c.Request.Context(), raw)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidNotification):
			appErr := pkg.NewDomainErrorSimple("INVALID_NOTIFICATION", "Invalid notification body", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		case errors.Is(err, usecase.ErrOrderNotFound):
			log.Printf("[webhook][handler] notification for unknown order acknowledged")
			c.JSON(http.StatusOK, gin.H{"success": true, "matched": false})
		default:
			log.Printf("[webhook][handler] notification processing failed err=%v", err)
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"matched":  true,
		"order_id": order.ID,
		"status":   string(order.Status),
	})
}

// Liveness lets the provider's webhook validation ping the endpoint.
func (h *WebhookHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
