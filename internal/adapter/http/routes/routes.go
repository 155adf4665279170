package routes

import (
	"context"
	"log"
	"strconv"

	_ "agreste_marketplace/docs" // This will be auto-generated
	"agreste_marketplace/internal/adapter/http/handlers"
	"agreste_marketplace/internal/adapter/persistence/repository"
	"agreste_marketplace/internal/domain/entities"
	"agreste_marketplace/internal/infrastructure/database"
	"agreste_marketplace/internal/infrastructure/payments"
	"agreste_marketplace/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/zoobzio/hookz"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.Connect()

	configRepo := repository.NewGatewayConfigDynamoRepository(ddb)
	storeRepo := repository.NewStoreDynamoRepository(ddb)
	orderRepo := repository.NewOrderDynamoRepository(ddb)

	gateway := payments.NewPagBankGateway()

	configUseCase := usecase.NewConfigUseCase(configRepo, storeRepo)
	storeUseCase := usecase.NewStoreUseCase(storeRepo)
	checkoutUseCase := usecase.NewCheckoutUseCase(configRepo, storeRepo, orderRepo, gateway, nil)
	webhookUseCase := usecase.NewWebhookUseCase(orderRepo)

	registerChargeSubscribers(webhookUseCase)

	configHandler := handlers.NewConfigHandler(configUseCase)
	storeHandler := handlers.NewStoreHandler(storeUseCase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMarketplaceRoutes(v1, storeHandler, configHandler, checkoutHandler, webhookHandler)
}

// registerChargeSubscribers wires the in-process listeners for charge status
// changes. Today that is an audit log line per status; order dashboards and
// mail senders hang off the same keys.
func registerChargeSubscribers(wh usecase.IWebhookUseCase) {
	hooks := wh.Events()
	for _, key := range []hookz.Key{
		usecase.HookChargePaid,
		usecase.HookChargeDeclined,
		usecase.HookChargeCanceled,
		usecase.HookChargeAuthorized,
		usecase.HookChargeUpdated,
	} {
		key := key
		if _, err := hooks.Hook(key, func(_ context.Context, ev entities.ChargeEvent) error {
			log.Printf("[webhook][subscriber] %s order_id=%s charge_id=%s status=%s", key, ev.OrderID, ev.ChargeID, ev.Status)
			return nil
		}); err != nil {
			log.Printf("[webhook][subscriber] registration failed key=%s err=%v", key, err)
		}
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
