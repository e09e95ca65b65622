package domain_test

import (
	"testing"

	"github.com/bukupintar/bukupintar_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestProduct_TotalStock(t *testing.T) {
	tests := []struct {
		name    string
		product domain.Product
		want    int64
	}{
		{
			name: "stock spread over two warehouses",
			product: domain.Product{
				Stocks: map[string]int64{"Gudang Utama": 150, "Toko": 45},
			},
			want: 195,
		},
		{
			name:    "empty stock map totals zero",
			product: domain.Product{Stocks: map[string]int64{}},
			want:    0,
		},
		{
			name:    "nil stock map totals zero",
			product: domain.Product{},
			want:    0,
		},
		{
			name: "single warehouse",
			product: domain.Product{
				Stocks: map[string]int64{"Toko": 120},
			},
			want: 120,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.product.TotalStock())
		})
	}
}

func TestProduct_IsLowStock(t *testing.T) {
	tests := []struct {
		name    string
		product domain.Product
		want    bool
	}{
		{
			name: "above minimum is not low",
			product: domain.Product{
				Stocks:   map[string]int64{"Gudang Utama": 150, "Toko": 45},
				MinStock: 50,
			},
			want: false,
		},
		{
			name: "below minimum is low",
			product: domain.Product{
				Stocks:   map[string]int64{"Toko": 10},
				MinStock: 20,
			},
			want: true,
		},
		{
			name: "exactly at minimum is not low",
			product: domain.Product{
				Stocks:   map[string]int64{"Toko": 50},
				MinStock: 50,
			},
			want: false,
		},
		{
			name: "no stock with positive minimum is low",
			product: domain.Product{
				MinStock: 1,
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.product.IsLowStock())
		})
	}
}

func TestProduct_StockIn(t *testing.T) {
	p := domain.Product{
		Stocks: map[string]int64{"Gudang Utama": 80, "Gudang Cabang": 20},
	}

	assert.Equal(t, int64(80), p.StockIn("Gudang Utama"))
	assert.Equal(t, int64(20), p.StockIn("Gudang Cabang"))
	// A warehouse missing from the map contributes zero, not an error.
	assert.Equal(t, int64(0), p.StockIn("Toko"))
}
