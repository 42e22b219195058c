package routes

import (
	"net/http"

	"pharmacy-chatbot-backend/config"
	"pharmacy-chatbot-backend/controllers"
	"pharmacy-chatbot-backend/database"
	"pharmacy-chatbot-backend/knowledge"
	"pharmacy-chatbot-backend/models"
	"pharmacy-chatbot-backend/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRoutes(router *gin.Engine, cfg *config.Config, db *mongo.Database) {
	// Initialize services
	kb := knowledge.Default()
	store := database.NewMongoStore(db)
	lookup := services.NewLookupService(cfg.Lookup, services.DefaultSources)

	chatbotService := services.NewChatbotService(store, lookup, kb)
	interactionService := services.NewInteractionService(kb)
	insightsService := services.NewInsightsService(store)

	// Initialize controllers
	chatbotController := controllers.NewChatbotController(chatbotService, interactionService, insightsService)
	wsController := controllers.NewWebSocketController(chatbotService, cfg.Security.AllowedOrigins)

	api := router.Group("/api/v1")
	{
		chatbot := api.Group("/chatbot")
		chatbot.POST("/chat", chatbotController.HandleChat)
		chatbot.POST("/drug-interactions", chatbotController.CheckDrugInteractions)
		chatbot.GET("/insights", chatbotController.GetInsights)
		chatbot.POST("/reports", chatbotController.GenerateReport)
		chatbot.GET("/intents", chatbotController.GetSupportedIntents)

		// WebSocket for real-time chat
		api.GET("/ws", wsController.HandleWebSocket)

		// Pharmacy records
		controllers.NewResourceController[models.Stock]("stock item",
			database.NewRepository[models.Stock](db, database.StockCollection)).Register(api.Group("/stock"))
		controllers.NewResourceController[models.Sale]("sale",
			database.NewRepository[models.Sale](db, database.SalesCollection)).Register(api.Group("/sales"))
		controllers.NewResourceController[models.Purchase]("purchase",
			database.NewRepository[models.Purchase](db, database.PurchaseCollection)).Register(api.Group("/purchases"))
		controllers.NewResourceController[models.Customer]("customer",
			database.NewRepository[models.Customer](db, database.CustomerCollection)).Register(api.Group("/customers"))
		controllers.NewResourceController[models.Supplier]("supplier",
			database.NewRepository[models.Supplier](db, database.SupplierCollection)).Register(api.Group("/suppliers"))
		controllers.NewResourceController[models.Product]("product",
			database.NewRepository[models.Product](db, database.ProductCollection)).Register(api.Group("/products"))
	}

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Route not found",
			"error":   c.Request.URL.Path,
		})
	})
}
