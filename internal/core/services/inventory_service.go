package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bukupintar/bukupintar_app/internal/apperrors"
	"github.com/bukupintar/bukupintar_app/internal/core/domain"
	portsrepo "github.com/bukupintar/bukupintar_app/internal/core/ports/repositories"
	portssvc "github.com/bukupintar/bukupintar_app/internal/core/ports/services"
	"github.com/bukupintar/bukupintar_app/internal/dto"
	"github.com/bukupintar/bukupintar_app/internal/utils/aggregate"
)

// inventoryService implements the InventorySvcFacade interface
type inventoryService struct {
	BaseService
	productRepo portsrepo.ProductReader
}

// NewInventoryService creates a new inventory service over the product repository.
func NewInventoryService(repo portsrepo.ProductReader) portssvc.InventorySvcFacade {
	return &inventoryService{productRepo: repo}
}

// Ensure inventoryService implements the InventorySvcFacade interface
var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

func (s *inventoryService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find product by ID", slog.String("product_id", productID))
		}
		return nil, err
	}
	return product, nil
}

func (s *inventoryService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products")
		return nil, err
	}
	return products, nil
}

func (s *inventoryService) ListLowStockProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products for low-stock filter")
		return nil, err
	}
	return aggregate.FilterLowStock(products), nil
}

func (s *inventoryService) ListWarehouseStocks(ctx context.Context) ([]dto.WarehouseStock, error) {
	warehouses, err := s.productRepo.ListWarehouses(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list warehouses")
		return nil, err
	}
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products for warehouse totals")
		return nil, err
	}

	stocks := make([]dto.WarehouseStock, len(warehouses))
	for i, w := range warehouses {
		stocks[i] = dto.WarehouseStock{
			Warehouse:  w,
			TotalStock: aggregate.StockInWarehouse(products, w),
		}
	}
	return stocks, nil
}
