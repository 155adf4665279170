package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agreste_marketplace/internal/adapter/http/handlers/mocks"
	"agreste_marketplace/internal/domain/entities"
	"agreste_marketplace/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestStoreHandler_CreateStore(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStoreUseCase(ctrl)
		h := NewStoreHandler(uc)

		r := gin.New()
		r.POST("/v1/stores", h.CreateStore)

		now := time.Now().UTC()
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Store{
			ID: "store-1", Slug: "loja-da-maria", Name: "Loja da Maria",
			Status: entities.StoreStatusAtivo, CreatedAt: now, UpdatedAt: now,
		}, nil)

		body := `{"slug": "loja-da-maria", "name": "Loja da Maria"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/stores", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "store-1" || resp["status"] != "ativo" {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
	})

	t.Run("duplicate slug", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStoreUseCase(ctrl)
		h := NewStoreHandler(uc)

		r := gin.New()
		r.POST("/v1/stores", h.CreateStore)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Store{}, usecase.ErrStoreAlreadyExists)

		body := `{"slug": "loja", "name": "Loja"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/stores", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStoreUseCase(ctrl)
		h := NewStoreHandler(uc)

		r := gin.New()
		r.POST("/v1/stores", h.CreateStore)

		req := httptest.NewRequest(http.MethodPost, "/v1/stores", bytes.NewBufferString(`{"slug": "loja"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestStoreHandler_PauseResume(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("pause", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStoreUseCase(ctrl)
		h := NewStoreHandler(uc)

		r := gin.New()
		r.PATCH("/v1/stores/:store_id/pause", h.PauseStore)

		uc.EXPECT().Pause(gomock.Any(), "store-1").
			Return(entities.Store{ID: "store-1", Status: entities.StoreStatusPausada}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/stores/store-1/pause", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("resume not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStoreUseCase(ctrl)
		h := NewStoreHandler(uc)

		r := gin.New()
		r.PATCH("/v1/stores/:store_id/resume", h.ResumeStore)

		uc.EXPECT().Resume(gomock.Any(), "missing").Return(entities.Store{}, usecase.ErrStoreNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/stores/missing/resume", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestStoreHandler_GetStoreBySlug(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIStoreUseCase(ctrl)
	h := NewStoreHandler(uc)

	r := gin.New()
	r.GET("/v1/stores/slug/:slug", h.GetStoreBySlug)

	uc.EXPECT().GetBySlug(gomock.Any(), "loja-da-maria").
		Return(entities.Store{ID: "store-1", Slug: "loja-da-maria"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/stores/slug/loja-da-maria", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestMapStoreError(t *testing.T) {
	if got := mapStoreError(usecase.ErrInvalidStoreSlug); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapStoreError(usecase.ErrStoreAlreadyExists); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapStoreError(usecase.ErrStoreNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapStoreError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
