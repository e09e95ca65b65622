package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bukupintar/bukupintar_app/internal/apperrors"
	portssvc "github.com/bukupintar/bukupintar_app/internal/core/ports/services"
	"github.com/bukupintar/bukupintar_app/internal/dto"
	"github.com/bukupintar/bukupintar_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// financeHandler handles HTTP requests related to accounts, assets and
// the payment configuration.
type financeHandler struct {
	financeService portssvc.FinanceSvcFacade
}

// newFinanceHandler creates a new financeHandler.
func newFinanceHandler(fs portssvc.FinanceSvcFacade) *financeHandler {
	return &financeHandler{
		financeService: fs,
	}
}

// registerFinanceRoutes registers routes related to finance data.
func registerFinanceRoutes(rg *gin.RouterGroup, financeService portssvc.FinanceSvcFacade) {
	h := newFinanceHandler(financeService)

	rg.GET("/accounts", h.listAccounts)
	rg.GET("/assets", h.listAssets)

	paymentConfig := rg.Group("/payment-config")
	{
		paymentConfig.GET("", h.getPaymentConfig)
		paymentConfig.PATCH("", h.patchPaymentConfig)
	}
}

// listAccounts godoc
// @Summary List the chart of accounts
// @Description Retrieves all accounts with per-type balance totals
// @Tags finance
// @Produce json
// @Success 200 {object} dto.ChartOfAccountsResponse
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Router /accounts [get]
func (h *financeHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.financeService.ListAccounts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list accounts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list accounts"})
		return
	}

	c.JSON(http.StatusOK, accounts)
}

// listAssets godoc
// @Summary List fixed assets
// @Description Retrieves all fixed assets with derived depreciation figures
// @Tags finance
// @Produce json
// @Success 200 {object} dto.ListAssetsResponse
// @Failure 500 {object} map[string]string "Failed to list assets"
// @Router /assets [get]
func (h *financeHandler) listAssets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	assets, err := h.financeService.ListAssets(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list fixed assets", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list assets"})
		return
	}

	c.JSON(http.StatusOK, dto.ListAssetsResponse{Assets: assets})
}

// getPaymentConfig godoc
// @Summary Get the payment configuration
// @Description Retrieves the active gateway, API keys and sandbox flag
// @Tags finance
// @Produce json
// @Success 200 {object} dto.PaymentConfigResponse
// @Failure 500 {object} map[string]string "Failed to get payment config"
// @Router /payment-config [get]
func (h *financeHandler) getPaymentConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cfg, err := h.financeService.GetPaymentConfig(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get payment config", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get payment config"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentConfigResponse(cfg))
}

// patchPaymentConfig godoc
// @Summary Patch the payment configuration
// @Description Merges the provided fields into the payment configuration; omitted fields keep their values
// @Tags finance
// @Accept json
// @Produce json
// @Param config body dto.PatchPaymentConfigRequest true "Fields to update"
// @Success 200 {object} dto.PaymentConfigResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to update payment config"
// @Router /payment-config [patch]
func (h *financeHandler) patchPaymentConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PatchPaymentConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PatchPaymentConfig", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cfg, err := h.financeService.PatchPaymentConfig(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to patch payment config", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment config"})
		}
		return
	}

	logger.Info("Payment config updated")
	c.JSON(http.StatusOK, dto.ToPaymentConfigResponse(cfg))
}
