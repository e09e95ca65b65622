package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/bukupintar/bukupintar_app/internal/adapters/ai"
	"github.com/bukupintar/bukupintar_app/internal/adapters/payment"
	"github.com/bukupintar/bukupintar_app/internal/core/domain"
	portsrepo "github.com/bukupintar/bukupintar_app/internal/core/ports/repositories"
	"github.com/bukupintar/bukupintar_app/internal/core/services"
	"github.com/bukupintar/bukupintar_app/internal/handlers"
	"github.com/bukupintar/bukupintar_app/internal/middleware"
	"github.com/bukupintar/bukupintar_app/internal/platform/config"
	"github.com/bukupintar/bukupintar_app/internal/repositories/database/memory"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title BukuPintar Backend API
// @version 1.0
// @description Small-business dashboard API for inventory, sales, payroll and finance.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// All business data lives in the seeded in-memory store
	store := memory.NewStore()
	repos := memory.NewRepositoryProvider(store)
	logger.Info("In-memory store seeded")

	// Apply environment overrides for the payment gateway credentials
	if err := applyGatewayOverrides(context.Background(), cfg, &repos); err != nil {
		logger.Error("Failed to apply payment config overrides", slog.String("error", err.Error()))
		os.Exit(1)
	}

	completer := ai.NewOpenAICompleter(cfg.AssistantAPIKey, cfg.AssistantModel)
	linker := payment.NewStubLinker()
	serviceContainer := services.NewServiceContainer(&repos, completer, linker)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (CORS, logging, recovery)
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendBaseURL}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "OPTIONS"}
	r.Use(cors.New(corsConfig), middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// applyGatewayOverrides patches the seeded payment configuration with
// credentials supplied through the environment. Unset variables leave
// the seed values in place.
func applyGatewayOverrides(ctx context.Context, cfg *config.Config, repos *portsrepo.RepositoryProvider) error {
	patch := domain.PaymentConfigPatch{}
	if cfg.MidtransAPIKey != "" {
		patch.MidtransAPIKey = &cfg.MidtransAPIKey
	}
	if cfg.XenditAPIKey != "" {
		patch.XenditAPIKey = &cfg.XenditAPIKey
	}
	if cfg.IsSandboxSet {
		patch.IsSandbox = &cfg.IsSandbox
	}
	if patch.MidtransAPIKey == nil && patch.XenditAPIKey == nil && patch.IsSandbox == nil {
		return nil
	}
	_, err := repos.PaymentConfigRepo.PatchPaymentConfig(ctx, patch)
	return err
}
