package services

import (
	"context"

	"github.com/bukupintar/bukupintar_app/internal/core/domain"
	"github.com/bukupintar/bukupintar_app/internal/dto"
)

// InventoryReaderSvc defines read operations for product and stock data
type InventoryReaderSvc interface {
	// GetProductByID retrieves a specific product by its ID.
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves all products.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// ListLowStockProducts retrieves the products whose total stock is
	// below their minimum stock level, in product order.
	ListLowStockProducts(ctx context.Context) ([]domain.Product, error)

	// ListWarehouseStocks retrieves the per-warehouse stock totals
	// across all products.
	ListWarehouseStocks(ctx context.Context) ([]dto.WarehouseStock, error)
}

// InventorySvcFacade combines all inventory-related service interfaces
type InventorySvcFacade interface {
	InventoryReaderSvc
}
