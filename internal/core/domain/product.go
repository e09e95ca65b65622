package domain

import "github.com/shopspring/decimal"

// KnownWarehouses lists the warehouse names tracked by the system.
// A product's Stocks map keys into a subset of this set.
var KnownWarehouses = []string{"Gudang Utama", "Gudang Cabang", "Toko"}

// Product represents a sellable item with per-warehouse stock levels.
type Product struct {
	ProductID string           `json:"productID"`
	Name      string           `json:"name"`
	SKU       string           `json:"sku"`
	Category  string           `json:"category"`
	Stocks    map[string]int64 `json:"stocks"` // warehouse name -> on-hand quantity
	Unit      string           `json:"unit"`
	Price     decimal.Decimal  `json:"price"`
	Cost      decimal.Decimal  `json:"cost"`
	MinStock  int64            `json:"minStock"`
}

// TotalStock sums on-hand quantity across every warehouse.
// An empty or nil stock map totals zero.
func (p Product) TotalStock() int64 {
	var total int64
	for _, qty := range p.Stocks {
		total += qty
	}
	return total
}

// IsLowStock reports whether total stock is strictly below the minimum
// stock level. A total equal to MinStock is not low.
func (p Product) IsLowStock() bool {
	return p.TotalStock() < p.MinStock
}

// StockIn returns the on-hand quantity held in the named warehouse.
// A warehouse absent from the stock map contributes zero, not an error.
func (p Product) StockIn(warehouse string) int64 {
	return p.Stocks[warehouse]
}
