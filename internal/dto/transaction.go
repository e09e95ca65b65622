package dto

import (
	"github.com/bukupintar/bukupintar_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionItemResponse defines the data returned for an invoice line.
type TransactionItemResponse struct {
	ProductID string          `json:"productID"`
	Name      string          `json:"name"`
	Qty       int64           `json:"qty"`
	Price     decimal.Decimal `json:"price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID  string                    `json:"transactionID"`
	Date           string                    `json:"date"`
	Type           domain.TransactionType    `json:"type"`
	CustomerVendor string                    `json:"customerVendor"`
	CustomerEmail  string                    `json:"customerEmail,omitempty"`
	Total          decimal.Decimal           `json:"total"`
	Status         domain.TransactionStatus  `json:"status"`
	PaymentLink    string                    `json:"paymentLink,omitempty"`
	PaymentGateway domain.PaymentGateway     `json:"paymentGateway,omitempty"`
	Items          []TransactionItemResponse `json:"items"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	items := make([]TransactionItemResponse, len(t.Items))
	for i, item := range t.Items {
		items[i] = TransactionItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Qty:       item.Qty,
			Price:     item.Price,
			Subtotal:  item.Subtotal(),
		}
	}
	return TransactionResponse{
		TransactionID:  t.TransactionID,
		Date:           t.Date,
		Type:           t.Type,
		CustomerVendor: t.CustomerVendor,
		CustomerEmail:  t.CustomerEmail,
		Total:          t.Total,
		Status:         t.Status,
		PaymentLink:    t.PaymentLink,
		PaymentGateway: t.PaymentGateway,
		Items:          items,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to a slice of TransactionResponse DTOs
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		res[i] = ToTransactionResponse(&t)
	}
	return res
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Type string `form:"type" binding:"omitempty,oneof=Penjualan Pembelian"`
}

// ListTransactionsResponse wraps the list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// UpdateTransactionStatusRequest defines the data needed to patch a
// transaction's payment status.
type UpdateTransactionStatusRequest struct {
	Status domain.TransactionStatus `json:"status" binding:"required,oneof='Lunas' 'Sebagian' 'Belum Bayar' 'Kadaluarsa'"`
}

// AmountResponse wraps a single derived currency amount.
type AmountResponse struct {
	Total decimal.Decimal `json:"total"`
}

// CSVExport is a rendered CSV document ready to serve as a download.
type CSVExport struct {
	Filename string
	Content  []byte
}
