package dto

import (
	"github.com/bukupintar/bukupintar_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProductResponse defines the data returned for a product, including
// the derived stock figures every view needs.
type ProductResponse struct {
	ProductID  string           `json:"productID"`
	Name       string           `json:"name"`
	SKU        string           `json:"sku"`
	Category   string           `json:"category"`
	Stocks     map[string]int64 `json:"stocks"`
	Unit       string           `json:"unit"`
	Price      decimal.Decimal  `json:"price"`
	Cost       decimal.Decimal  `json:"cost"`
	MinStock   int64            `json:"minStock"`
	TotalStock int64            `json:"totalStock"`
	IsLowStock bool             `json:"isLowStock"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:  p.ProductID,
		Name:       p.Name,
		SKU:        p.SKU,
		Category:   p.Category,
		Stocks:     p.Stocks,
		Unit:       p.Unit,
		Price:      p.Price,
		Cost:       p.Cost,
		MinStock:   p.MinStock,
		TotalStock: p.TotalStock(),
		IsLowStock: p.IsLowStock(),
	}
}

// ToListProductResponse converts a slice of domain.Product to a slice of ProductResponse DTOs
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i, p := range products {
		res[i] = ToProductResponse(&p)
	}
	return res
}

// ListProductsResponse wraps the list of products.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
}

// WarehouseStock is the total on-hand quantity across all products for
// one warehouse.
type WarehouseStock struct {
	Warehouse  string `json:"warehouse"`
	TotalStock int64  `json:"totalStock"`
}

// ListWarehouseStocksResponse wraps the per-warehouse stock totals.
type ListWarehouseStocksResponse struct {
	Warehouses []WarehouseStock `json:"warehouses"`
}
