package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/recicla365/app-ecopontos/internal/config"
	"github.com/recicla365/app-ecopontos/internal/handlers"
	"github.com/recicla365/app-ecopontos/internal/logging"
	"github.com/recicla365/app-ecopontos/internal/middleware"
	"github.com/recicla365/app-ecopontos/internal/observability"
	"github.com/recicla365/app-ecopontos/internal/services"
	"github.com/recicla365/app-ecopontos/internal/storage"
	"github.com/recicla365/app-ecopontos/internal/utils/httpclient"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/recicla365/app-ecopontos/docs"
)

// @title           Recicla365 EcoPontos API
// @version         1.0
// @description     API de cadastro de usuários e pontos de coleta de materiais recicláveis, com validação de formulários, consulta de CEP e geolocalização.

// @contact.name   Recicla365

// @host      localhost:8080
// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @tag.name session
// @tag.description Cadastro, login e perfil do usuário do dispositivo

// @tag.name collection-points
// @tag.description Pontos de coleta de resíduos

// @tag.name forms
// @tag.description Validação e dados de apoio dos formulários

// @tag.name lookup
// @tag.description Consulta de CEP, mapas e geolocalização

// @tag.name health
// @tag.description Health check operations

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	// Initialize logger first
	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() { _ = logging.Logger.Sync() }()

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}
	cfg := config.AppConfig

	// Initialize observability
	observability.InitTracer()
	defer observability.ShutdownTracer()

	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	backend, closeStorage, err := storage.Open(startCtx)
	cancelStart()
	if err != nil {
		logging.Logger.Fatal("failed to open storage", zap.String("backend", cfg.StorageBackend), zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		closeStorage(ctx)
	}()

	logger := observability.Logger()

	demo, err := services.NewDemoUsers(nil)
	if err != nil {
		logging.Logger.Fatal("failed to build demo accounts", zap.Error(err))
	}
	users := services.NewUserStore(backend, logger)
	points := services.NewCollectionPointStore(backend, logger)

	if cfg.SeedDemoData {
		seeded, err := services.SeedCollectionPoints(context.Background(), points)
		if err != nil {
			logging.Logger.Fatal("failed to seed collection points", zap.Error(err))
		}
		logging.Logger.Info("demo collection points ready", zap.Int("seeded", seeded))
	}

	cep := services.NewCEPService(cfg.ViaCEPBaseURL, httpclient.NewClient(cfg.ViaCEPTimeout), backend, cfg.CEPCacheTTL, logger)

	loader := func(ctx context.Context, deviceID string) *services.Session {
		kv := storage.NewKeyValueStore(storage.WithNamespace(backend, "device:"+deviceID), logger)
		session := services.NewSession(kv, users, demo, logger)
		session.Init(ctx)
		return session
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	corsConfig := cors.DefaultConfig()
	if slices.Contains(cfg.AllowedOrigins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", middleware.DeviceIDHeader, "X-Request-ID")

	// Create router with middleware
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestTiming(),
		middleware.RequestLogger(),
		middleware.RequestTracker(),
		middleware.AuditMiddleware(),
		cors.New(corsConfig),
	)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	handlers.RegisterRoutes(router.Group("/v1"), handlers.API{
		Health:  handlers.NewHealthHandlers(map[string]storage.Backend{"storage": backend}, logger),
		Session: handlers.NewSessionHandlers(users, demo, logger),
		Users:   handlers.NewUserHandlers(users, demo, logger),
		Points:  handlers.NewCollectionPointHandlers(points, logger),
		Forms:   handlers.NewFormHandlers(points, logger),
		Lookup: handlers.NewLookupHandlers(cep, handlers.LookupConfig{
			GeolocationTimeout: cfg.GeolocationTimeout,
			GeolocationMaxAge:  cfg.GeolocationMaxAge,
			MapsBaseURL:        cfg.MapsBaseURL,
		}, logger),
		Sessions: loader,
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create server with timeouts
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logging.Logger.Info("starting server",
			zap.Int("port", cfg.Port),
			zap.String("environment", cfg.Environment),
			zap.String("storage", cfg.StorageBackend),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	logging.Logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Error("server forced to shutdown", zap.Error(err))
		return
	}

	logging.Logger.Info("server exited gracefully")
}
