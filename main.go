package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"pharmacy-chatbot-backend/config"
	"pharmacy-chatbot-backend/database"
	"pharmacy-chatbot-backend/docs"
	"pharmacy-chatbot-backend/logger"
	"pharmacy-chatbot-backend/middleware"
	"pharmacy-chatbot-backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	cfg := config.Get()
	logger.Init(cfg.LogLevel, cfg.IsProduction())

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Disconnect()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	limiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSec, cfg.Security.RateLimitBurst)
	limiter.Cleanup(ctx, 30*time.Minute)

	// Create Gin router
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.Security.TrustedProxies); err != nil {
		log.Fatal().Err(err).Msg("Invalid trusted proxies")
	}

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(cfg.Security.AllowedOrigins))
	router.Use(middleware.RateLimit(limiter))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		status, code := "ok", http.StatusOK
		if err := database.HealthCheck(c.Request.Context()); err != nil {
			status, code = "degraded", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now(),
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.EnableDocs {
		docs.SwaggerInfo.BasePath = "/api/v1"
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
	}

	// Setup all routes
	routes.SetupRoutes(router, cfg, database.GetMongoDB())

	logAvailableEndpoints(router)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Lookup.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Str("environment", cfg.Environment).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// logAvailableEndpoints logs all registered routes
func logAvailableEndpoints(router *gin.Engine) {
	for _, route := range router.Routes() {
		log.Debug().Str("method", route.Method).Str("path", route.Path).Msg("Route registered")
	}
}
