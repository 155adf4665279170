package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"agreste_marketplace/internal/adapter/http/handlers/mocks"
	"agreste_marketplace/internal/domain/entities"
	"agreste_marketplace/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestConfigHandler_SaveMerchantConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConfigUseCase(ctrl)
		h := NewConfigHandler(uc)

		r := gin.New()
		r.PUT("/v1/stores/:store_id/gateway-config", h.SaveMerchantConfig)

		req := httptest.NewRequest(http.MethodPut, "/v1/stores/store-1/gateway-config", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success masks api key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConfigUseCase(ctrl)
		h := NewConfigHandler(uc)

		r := gin.New()
		r.PUT("/v1/stores/:store_id/gateway-config", h.SaveMerchantConfig)

		uc.EXPECT().SaveMerchantConfig(gomock.Any(), "store-1", gomock.Any()).DoAndReturn(
			func(_ any, storeID string, cfg entities.GatewayConfig) (entities.GatewayConfig, error) {
				cfg.StoreID = storeID
				return cfg, nil
			})

		body := `{"api_key": "secret", "environment": "sandbox", "enabled_methods": {"pix": true}}`
		req := httptest.NewRequest(http.MethodPut, "/v1/stores/store-1/gateway-config", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["has_api_key"] != true {
			t.Fatalf("expected has_api_key=true: %s", w.Body.String())
		}
		if _, leaked := resp["api_key"]; leaked {
			t.Fatalf("api key leaked in response: %s", w.Body.String())
		}
	})

	t.Run("environment normalized to upper case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConfigUseCase(ctrl)
		h := NewConfigHandler(uc)

		r := gin.New()
		r.PUT("/v1/stores/:store_id/gateway-config", h.SaveMerchantConfig)

		uc.EXPECT().SaveMerchantConfig(gomock.Any(), "store-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, cfg entities.GatewayConfig) (entities.GatewayConfig, error) {
				if cfg.Environment != entities.EnvironmentProduction {
					t.Fatalf("environment = %s, want PRODUCTION", cfg.Environment)
				}
				return cfg, nil
			})

		body := `{"api_key": "secret", "environment": "production"}`
		req := httptest.NewRequest(http.MethodPut, "/v1/stores/store-1/gateway-config", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestConfigHandler_GetCheckoutOptions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(t *testing.T) (*mocks.MockIConfigUseCase, *gin.Engine, *gomock.Controller) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIConfigUseCase(ctrl)
		h := NewConfigHandler(uc)
		r := gin.New()
		r.GET("/v1/stores/:store_id/checkout-options", h.GetCheckoutOptions)
		return uc, r, ctrl
	}

	t.Run("resolved methods", func(t *testing.T) {
		uc, r, ctrl := build(t)
		defer ctrl.Finish()

		uc.EXPECT().ResolveCheckoutOptions(gomock.Any(), "store-1").
			Return(entities.EnabledMethods{Pix: true, Cartao: true}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/stores/store-1/checkout-options", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["pix"] != true || resp["boleto"] != false || resp["cartao"] != true {
			t.Fatalf("unexpected flags: %s", w.Body.String())
		}
	})

	t.Run("not configured vs no method available", func(t *testing.T) {
		cases := []struct {
			err  error
			code string
		}{
			{usecase.ErrGatewayNotConfigured, "GATEWAY_NOT_CONFIGURED"},
			{usecase.ErrNoPaymentMethodAvailable, "NO_PAYMENT_METHOD_AVAILABLE"},
		}
		for _, tc := range cases {
			uc, r, ctrl := build(t)

			uc.EXPECT().ResolveCheckoutOptions(gomock.Any(), "store-1").
				Return(entities.EnabledMethods{}, tc.err)

			req := httptest.NewRequest(http.MethodGet, "/v1/stores/store-1/checkout-options", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusConflict {
				t.Fatalf("%v: expected 409, got %d", tc.err, w.Code)
			}
			var resp map[string]any
			_ = json.Unmarshal(w.Body.Bytes(), &resp)
			if resp["code"] != tc.code {
				t.Fatalf("%v: code = %v, want %s", tc.err, resp["code"], tc.code)
			}
			ctrl.Finish()
		}
	})
}

func TestMapConfigError(t *testing.T) {
	if got := mapConfigError(usecase.ErrInvalidEnvironment); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapConfigError(usecase.ErrSoftDescriptorTooLong); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapConfigError(usecase.ErrConfigNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapConfigError(usecase.ErrStorePaused); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapConfigError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
