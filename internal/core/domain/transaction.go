package domain

import "github.com/shopspring/decimal"

// TransactionType distinguishes sales invoices from purchase orders.
type TransactionType string

const (
	Sale     TransactionType = "Penjualan"
	Purchase TransactionType = "Pembelian"
)

// IsValid reports whether the value is a known transaction type.
func (t TransactionType) IsValid() bool {
	return t == Sale || t == Purchase
}

// TransactionStatus tracks how far a transaction has been paid.
// Status transitions are externally driven; nothing in the system
// moves a transaction to Expired automatically.
type TransactionStatus string

const (
	StatusPaid    TransactionStatus = "Lunas"
	StatusPartial TransactionStatus = "Sebagian"
	StatusUnpaid  TransactionStatus = "Belum Bayar"
	StatusExpired TransactionStatus = "Kadaluarsa"
)

// IsValid reports whether the value is a known transaction status.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case StatusPaid, StatusPartial, StatusUnpaid, StatusExpired:
		return true
	}
	return false
}

// TransactionItem is a single line on an invoice.
type TransactionItem struct {
	ProductID string          `json:"productID"`
	Name      string          `json:"name"`
	Qty       int64           `json:"qty"`
	Price     decimal.Decimal `json:"price"`
}

// Subtotal returns qty times unit price.
func (i TransactionItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(i.Qty))
}

// Transaction represents a sales invoice or purchase order.
// Total is carried as recorded; it is not recomputed from Items and
// no consistency between the two is enforced.
type Transaction struct {
	TransactionID  string            `json:"transactionID"`
	Date           string            `json:"date"` // YYYY-MM-DD
	Type           TransactionType   `json:"type"`
	CustomerVendor string            `json:"customerVendor"`
	CustomerEmail  string            `json:"customerEmail,omitempty"`
	Total          decimal.Decimal   `json:"total"`
	Status         TransactionStatus `json:"status"`
	PaymentLink    string            `json:"paymentLink,omitempty"`
	PaymentGateway PaymentGateway    `json:"paymentGateway,omitempty"`
	Items          []TransactionItem `json:"items"`
}

// ItemsTotal sums Subtotal over all line items. An empty item list
// totals zero.
func (t Transaction) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range t.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}
