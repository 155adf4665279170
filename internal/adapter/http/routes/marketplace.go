package routes

import (
	"agreste_marketplace/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathStores  = "/stores"
	PathAdmin   = "/admin"
	PathWebhook = "/webhooks/pagbank"
)

func addMarketplaceRoutes(
	rg *gin.RouterGroup,
	storeHandler *handlers.StoreHandler,
	configHandler *handlers.ConfigHandler,
	checkoutHandler *handlers.CheckoutHandler,
	webhookHandler *handlers.WebhookHandler,
) {
	admin := rg.Group(PathAdmin)
	{
		admin.PUT("/gateway-config", configHandler.SavePlatformConfig)
		admin.GET("/gateway-config", configHandler.GetPlatformConfig)
	}

	stores := rg.Group(PathStores)
	{
		stores.POST("", storeHandler.CreateStore)
		stores.GET("", storeHandler.ListStores)
		stores.GET("/slug/:slug", storeHandler.GetStoreBySlug)
		stores.GET("/:store_id", storeHandler.GetStore)
		stores.PATCH("/:store_id/pause", storeHandler.PauseStore)
		stores.PATCH("/:store_id/resume", storeHandler.ResumeStore)
		stores.PUT("/:store_id/appearance", storeHandler.UpdateAppearance)

		stores.PUT("/:store_id/gateway-config", configHandler.SaveMerchantConfig)
		stores.GET("/:store_id/gateway-config", configHandler.GetMerchantConfig)
		stores.GET("/:store_id/checkout-options", configHandler.GetCheckoutOptions)

		stores.POST("/:store_id/checkout/pix", checkoutHandler.CreatePixOrder)
		stores.POST("/:store_id/checkout/boleto", checkoutHandler.CreateBoletoOrder)
		stores.POST("/:store_id/checkout/cartao", checkoutHandler.CreateCardOrder)
		stores.GET("/:store_id/orders", checkoutHandler.ListStoreOrders)
	}

	rg.GET("/orders/:order_id", checkoutHandler.GetOrder)

	rg.POST(PathWebhook, webhookHandler.ReceiveNotification)
	rg.GET(PathWebhook, webhookHandler.Liveness)
}
