package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	request "agreste_marketplace/internal/adapter/http/dto/request"
	response "agreste_marketplace/internal/adapter/http/dto/response"
	"agreste_marketplace/internal/domain/pagbank"
	"agreste_marketplace/internal/usecase"
	"agreste_marketplace/internal/usecase/interfaces"
	"agreste_marketplace/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)

// CheckoutHandler handles storefront checkout submissions and order lookups.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// CreatePixOrder creates a PIX order and returns the QR code pair.
func (h *CheckoutHandler) CreatePixOrder(c *gin.Context) {
	storeID := c.Param("store_id")
	log.Printf("[checkout][handler] pix start store_id=%s", storeID)

	var payload request.PixOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.CreatePixOrder(c.Request.Context(), storeID, usecase.PixOrderInput{
		Valor:     payload.Valor,
		Descricao: payload.Descricao,
		Customer:  payload.Cliente.ToCustomer(),
	})
	if err != nil {
		log.Printf("[checkout][handler] pix failed store_id=%s err=%v", storeID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] pix success store_id=%s order_id=%s", storeID, result.OrderID)

	c.JSON(http.StatusCreated, response.FromPixResult(result))
}

// CreateBoletoOrder creates a boleto order and returns the barcode pair.
func (h *CheckoutHandler) CreateBoletoOrder(c *gin.Context) {
	storeID := c.Param("store_id")
	log.Printf("[checkout][handler] boleto start store_id=%s", storeID)

	var payload request.BoletoOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.CreateBoletoOrder(c.Request.Context(), storeID, usecase.BoletoOrderInput{
		Valor:          payload.Valor,
		Descricao:      payload.Descricao,
		Customer:       payload.Cliente.ToCustomer(),
		VencimentoDias: payload.VencimentoDias,
	})
	if err != nil {
		log.Printf("[checkout][handler] boleto failed store_id=%s err=%v", storeID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] boleto success store_id=%s order_id=%s", storeID, result.OrderID)

	c.JSON(http.StatusCreated, response.FromBoletoResult(result))
}

// CreateCardOrder creates a card order with client-side encrypted card data.
func (h *CheckoutHandler) CreateCardOrder(c *gin.Context) {
	storeID := c.Param("store_id")
	log.Printf("[checkout][handler] card start store_id=%s", storeID)

	var payload request.CardOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.CreateCardOrder(c.Request.Context(), storeID, usecase.CardOrderInput{
		Valor:     payload.Valor,
		Descricao: payload.Descricao,
		Customer:  payload.Cliente.ToCustomer(),
		Card:      payload.ToCardData(),
	})
	if err != nil {
		log.Printf("[checkout][handler] card failed store_id=%s err=%v", storeID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] card success store_id=%s order_id=%s status=%s", storeID, result.OrderID, result.Status)

	c.JSON(http.StatusCreated, response.FromCardResult(result))
}

func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	orderID := c.Param("order_id")

	order, err := h.usecase.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *CheckoutHandler) ListStoreOrders(c *gin.Context) {
	storeID := c.Param("store_id")

	orders, err := h.usecase.ListStoreOrders(c.Request.Context(), storeID)
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func mapCheckoutError(err error) *pkg.AppError {
	var gwErr *interfaces.GatewayError
	if errors.As(err, &gwErr) {
		appErr := pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_ERROR", "Payment provider rejected the order", http.StatusBadGateway)
		if len(gwErr.Body) > 0 && json.Valid(gwErr.Body) {
			appErr.WithDetails(json.RawMessage(gwErr.Body))
		}
		return appErr
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidStoreID), errors.Is(err, pagbank.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCardData):
		return pkg.NewDomainErrorSimple("INVALID_CARD_DATA", "Missing encrypted card data or security code", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStoreNotFound):
		return pkg.NewDomainErrorSimple("STORE_NOT_FOUND", "Store not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStorePaused):
		return pkg.NewDomainErrorSimple("STORE_PAUSED", "Store is paused", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Payment gateway not configured for this store", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoPaymentMethodAvailable):
		return pkg.NewDomainErrorSimple("NO_PAYMENT_METHOD_AVAILABLE", "No payment method available for this store", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentMethodNotEnabled):
		return pkg.NewDomainErrorSimple("PAYMENT_METHOD_NOT_ENABLED", "Payment method not enabled for this store", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
