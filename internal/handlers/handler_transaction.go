package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bukupintar/bukupintar_app/internal/apperrors"
	"github.com/bukupintar/bukupintar_app/internal/core/domain"
	portssvc "github.com/bukupintar/bukupintar_app/internal/core/ports/services"
	"github.com/bukupintar/bukupintar_app/internal/dto"
	"github.com/bukupintar/bukupintar_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// transactionHandler handles HTTP requests related to sales and purchases.
type transactionHandler struct {
	salesService portssvc.SalesSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ss portssvc.SalesSvcFacade) *transactionHandler {
	return &transactionHandler{
		salesService: ss,
	}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, salesService portssvc.SalesSvcFacade) {
	h := newTransactionHandler(salesService)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.GET("/export", h.exportSalesCSV)
		transactions.GET("/total-sales", h.totalSales)
		transactions.GET("/:transactionID", h.getTransactionByID)
		transactions.POST("/:transactionID/payment-link", h.assignPaymentLink)
		transactions.PATCH("/:transactionID/status", h.updateStatus)
	}
}

// listTransactions godoc
// @Summary List transactions
// @Description Retrieves all transactions, optionally filtered by type
// @Tags transactions
// @Produce json
// @Param type query string false "Transaction type" Enums(Penjualan, Pembelian)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid type filter"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid transaction list params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txns, err := h.salesService.ListTransactions(c.Request.Context(), domain.TransactionType(params.Type))
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{Transactions: dto.ToListTransactionResponse(txns)})
}

// getTransactionByID godoc
// @Summary Get a transaction by ID
// @Description Retrieves one transaction with its line items
// @Tags transactions
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to get transaction"
// @Router /transactions/{transactionID} [get]
func (h *transactionHandler) getTransactionByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	txn, err := h.salesService.GetTransactionByID(c.Request.Context(), transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			logger.Error("Failed to get transaction", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// totalSales godoc
// @Summary Get the total sales amount
// @Description Sums the totals of all sales invoices
// @Tags transactions
// @Produce json
// @Success 200 {object} dto.AmountResponse
// @Failure 500 {object} map[string]string "Failed to compute total sales"
// @Router /transactions/total-sales [get]
func (h *transactionHandler) totalSales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	total, err := h.salesService.TotalSales(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute total sales", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute total sales"})
		return
	}

	c.JSON(http.StatusOK, total)
}

// exportSalesCSV godoc
// @Summary Export sales invoices as CSV
// @Description Renders all sales invoices as a CSV file download
// @Tags transactions
// @Produce text/csv
// @Success 200 {string} string "CSV content"
// @Failure 500 {object} map[string]string "Failed to export transactions"
// @Router /transactions/export [get]
func (h *transactionHandler) exportSalesCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	export, err := h.salesService.ExportSalesCSV(c.Request.Context())
	if err != nil {
		logger.Error("Failed to export sales CSV", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export transactions"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	c.Data(http.StatusOK, "text/csv", export.Content)
}

// assignPaymentLink godoc
// @Summary Assign a payment link to a transaction
// @Description Generates a payment link through the active gateway and stores it on the transaction
// @Tags transactions
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Active gateway cannot generate links"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to assign payment link"
// @Router /transactions/{transactionID}/payment-link [post]
func (h *transactionHandler) assignPaymentLink(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	txn, err := h.salesService.AssignPaymentLink(c.Request.Context(), transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to assign payment link", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign payment link"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateStatus godoc
// @Summary Update a transaction's payment status
// @Description Patches the payment status of one transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Param status body dto.UpdateTransactionStatusRequest true "New status"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to update status"
// @Router /transactions/{transactionID}/status [patch]
func (h *transactionHandler) updateStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	var req dto.UpdateTransactionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateStatus", slog.String("error", err.Error()))
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be one of: Lunas, Sebagian, Belum Bayar, Kadaluarsa"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.salesService.UpdateStatus(c.Request.Context(), transactionID, req.Status)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update transaction status", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}
