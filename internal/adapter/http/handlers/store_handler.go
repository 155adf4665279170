package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "agreste_marketplace/internal/adapter/http/dto/request"
	response "agreste_marketplace/internal/adapter/http/dto/response"
	"agreste_marketplace/internal/domain/entities"
	"agreste_marketplace/internal/usecase"
	"agreste_marketplace/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidStorePayload = pkg.NewDomainErrorSimple("INVALID_STORE_INPUT", "Invalid store payload", http.StatusBadRequest)

// StoreHandler handles the merchant registry endpoints.

type StoreHandler struct {
	usecase usecase.IStoreUseCase
}

func NewStoreHandler(uc usecase.IStoreUseCase) *StoreHandler {
	return &StoreHandler{usecase: uc}
}

func (h *StoreHandler) CreateStore(c *gin.Context) {
	var payload request.StoreRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStorePayload.HTTPStatus, errInvalidStorePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToStore())
	if err != nil {
		log.Printf("[store][handler] create failed slug=%s err=%v", payload.Slug, err)
		appErr := mapStoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromStore(created))
}

func (h *StoreHandler) ListStores(c *gin.Context) {
	stores, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapStoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStores(stores))
}

func (h *StoreHandler) GetStore(c *gin.Context) {
	store, err := h.usecase.GetByID(c.Request.Context(), c.Param("store_id"))
	if err != nil {
		appErr := mapStoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStore(store))
}

// GetStoreBySlug resolves the public storefront address.
func (h *StoreHandler) GetStoreBySlug(c *gin.Context) {
	store, err := h.usecase.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		appErr := mapStoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStore(store))
}

func (h *StoreHandler) PauseStore(c *gin.Context) {
	h.patchStoreStatus(c, h.usecase.Pause)
}

func (h *StoreHandler) ResumeStore(c *gin.Context) {
	h.patchStoreStatus(c, h.usecase.Resume)
}

func (h *StoreHandler) patchStoreStatus(c *gin.Context, updater func(ctx context.Context, id string) (entities.Store, error)) {
	storeID := c.Param("store_id")

	store, err := updater(c.Request.Context(), storeID)
	if err != nil {
		log.Printf("[store][handler] status update failed store_id=%s err=%v", storeID, err)
		appErr := mapStoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStore(store))
}

func (h *StoreHandler) UpdateAppearance(c *gin.Context) {
	storeID := c.Param("store_id")

	var payload request.AppearanceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStorePayload.HTTPStatus, errInvalidStorePayload.ToHTTPError())
		return
	}

	store, err := h.usecase.UpdateAppearance(c.Request.Context(), storeID, payload.ToAppearance())
	if err != nil {
		appErr := mapStoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStore(store))
}

func mapStoreError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidStoreID), errors.Is(err, usecase.ErrInvalidStoreSlug), errors.Is(err, usecase.ErrInvalidStoreName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStoreAlreadyExists):
		return pkg.NewDomainErrorSimple("STORE_ALREADY_EXISTS", "A store with this slug already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrStoreNotFound):
		return pkg.NewDomainErrorSimple("STORE_NOT_FOUND", "Store not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
