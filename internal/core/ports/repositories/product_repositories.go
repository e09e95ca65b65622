package repositories

import (
	"context"

	"github.com/bukupintar/bukupintar_app/internal/core/domain"
)

// ProductReader defines read operations over the product snapshot.
type ProductReader interface {
	// FindProductByID retrieves a specific product by its unique identifier.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves all products in seed order.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// ListWarehouses retrieves the known warehouse names.
	ListWarehouses(ctx context.Context) ([]string, error)
}
