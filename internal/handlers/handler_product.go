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

// productHandler handles HTTP requests related to products and stock.
type productHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

// newProductHandler creates a new productHandler.
func newProductHandler(is portssvc.InventorySvcFacade) *productHandler {
	return &productHandler{
		inventoryService: is,
	}
}

// registerProductRoutes registers routes related to products and warehouses.
func registerProductRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	h := newProductHandler(inventoryService)

	products := rg.Group("/products")
	{
		products.GET("", h.listProducts)
		products.GET("/low-stock", h.listLowStockProducts)
		products.GET("/:productID", h.getProductByID)
	}
	rg.GET("/warehouses", h.listWarehouseStocks)
}

// listProducts godoc
// @Summary List products
// @Description Retrieves all products with derived total stock and low-stock flags
// @Tags products
// @Produce json
// @Success 200 {object} dto.ListProductsResponse
// @Failure 500 {object} map[string]string "Failed to list products"
// @Router /products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	products, err := h.inventoryService.ListProducts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list products", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}

	c.JSON(http.StatusOK, dto.ListProductsResponse{Products: dto.ToListProductResponse(products)})
}

// listLowStockProducts godoc
// @Summary List low-stock products
// @Description Retrieves products whose total stock is below their minimum stock level
// @Tags products
// @Produce json
// @Success 200 {object} dto.ListProductsResponse
// @Failure 500 {object} map[string]string "Failed to list products"
// @Router /products/low-stock [get]
func (h *productHandler) listLowStockProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	products, err := h.inventoryService.ListLowStockProducts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list low-stock products", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}

	c.JSON(http.StatusOK, dto.ListProductsResponse{Products: dto.ToListProductResponse(products)})
}

// getProductByID godoc
// @Summary Get a product by ID
// @Description Retrieves one product with its derived stock figures
// @Tags products
// @Produce json
// @Param productID path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Failed to get product"
// @Router /products/{productID} [get]
func (h *productHandler) getProductByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("productID")

	product, err := h.inventoryService.GetProductByID(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			logger.Error("Failed to get product", slog.String("product_id", productID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get product"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// listWarehouseStocks godoc
// @Summary List warehouse stock totals
// @Description Retrieves the total on-hand quantity per warehouse across all products
// @Tags products
// @Produce json
// @Success 200 {object} dto.ListWarehouseStocksResponse
// @Failure 500 {object} map[string]string "Failed to list warehouses"
// @Router /warehouses [get]
func (h *productHandler) listWarehouseStocks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stocks, err := h.inventoryService.ListWarehouseStocks(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list warehouse stocks", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list warehouses"})
		return
	}

	c.JSON(http.StatusOK, dto.ListWarehouseStocksResponse{Warehouses: stocks})
}
