package repositories

import (
	"context"

	"github.com/bukupintar/bukupintar_app/internal/core/domain"
)

// AccountReader defines read operations over the chart of accounts.
type AccountReader interface {
	// ListAccounts retrieves all accounts in chart order.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AssetReader defines read operations over the fixed-asset register.
type AssetReader interface {
	// ListAssets retrieves all fixed assets in seed order.
	ListAssets(ctx context.Context) ([]domain.FixedAsset, error)
}

// PaymentConfigReader defines read access to the payment configuration.
type PaymentConfigReader interface {
	// GetPaymentConfig retrieves the current payment configuration.
	GetPaymentConfig(ctx context.Context) (*domain.PaymentConfig, error)
}

// PaymentConfigWriter defines the patch operation on the payment
// configuration. Unspecified fields are retained unchanged.
type PaymentConfigWriter interface {
	// PatchPaymentConfig merges the supplied fields into the stored
	// configuration and returns the result.
	PatchPaymentConfig(ctx context.Context, patch domain.PaymentConfigPatch) (*domain.PaymentConfig, error)
}

// PaymentConfigRepositoryFacade combines payment-config reads and writes.
type PaymentConfigRepositoryFacade interface {
	PaymentConfigReader
	PaymentConfigWriter
}
