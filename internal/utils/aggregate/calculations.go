package aggregate

import (
	"github.com/bukupintar/bukupintar_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// This package holds the pure collection-level aggregations every view
// derives from the business snapshot. All functions are deterministic,
// side-effect free, and treat missing data as the identity element.

// TotalSales sums Total over sales transactions only. Purchases are
// excluded, so the result is invariant under adding purchase rows and
// under reordering the input.
func TotalSales(transactions []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range transactions {
		if txn.Type == domain.Sale {
			total = total.Add(txn.Total)
		}
	}
	return total
}

// ReceivablesTotal sums Total over sales transactions that are not yet
// fully paid (partial or unpaid).
func ReceivablesTotal(transactions []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range transactions {
		if txn.Type != domain.Sale {
			continue
		}
		if txn.Status == domain.StatusPartial || txn.Status == domain.StatusUnpaid {
			total = total.Add(txn.Total)
		}
	}
	return total
}

// FilterByType returns the transactions of the given type, preserving
// the original relative order.
func FilterByType(transactions []domain.Transaction, txnType domain.TransactionType) []domain.Transaction {
	filtered := make([]domain.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if txn.Type == txnType {
			filtered = append(filtered, txn)
		}
	}
	return filtered
}

// FilterLowStock returns the products whose total stock is below their
// minimum stock level, preserving input order.
func FilterLowStock(products []domain.Product) []domain.Product {
	filtered := make([]domain.Product, 0)
	for _, p := range products {
		if p.IsLowStock() {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// StockInWarehouse sums, over all products, the quantity held in the
// named warehouse. Products without stock in that warehouse contribute
// zero.
func StockInWarehouse(products []domain.Product, warehouse string) int64 {
	var total int64
	for _, p := range products {
		total += p.StockIn(warehouse)
	}
	return total
}
