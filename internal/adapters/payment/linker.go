package payment

import (
	"context"
	"fmt"

	"github.com/bukupintar/bukupintar_app/internal/apperrors"
	"github.com/bukupintar/bukupintar_app/internal/core/domain"
	portssvc "github.com/bukupintar/bukupintar_app/internal/core/ports/services"
	"github.com/bukupintar/bukupintar_app/internal/utils"
)

// tokenBytes sizes the random checkout token; 8 bytes hex-encodes to a
// 16-character path segment.
const tokenBytes = 8

// StubLinker generates checkout URLs in the shape the real gateways
// use, with a random token in place of a gateway session. It stands in
// for the Midtrans/Xendit integrations until those are wired up.
type StubLinker struct{}

// NewStubLinker creates a stand-in payment link generator.
func NewStubLinker() *StubLinker {
	return &StubLinker{}
}

// Ensure StubLinker implements the PaymentLinker port
var _ portssvc.PaymentLinker = (*StubLinker)(nil)

// GenerateLink produces a checkout URL for the given gateway. The
// Manual gateway has no link flow and is rejected with a validation
// error.
func (l *StubLinker) GenerateLink(ctx context.Context, txn domain.Transaction, gateway domain.PaymentGateway, sandbox bool) (string, error) {
	token, err := utils.GenerateSecureRandomString(tokenBytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate checkout token: %w", err)
	}

	switch gateway {
	case domain.Midtrans:
		host := "app.midtrans.com"
		if sandbox {
			host = "app.sandbox.midtrans.com"
		}
		return fmt.Sprintf("https://%s/snap/v2/vtweb/%s", host, token), nil
	case domain.Xendit:
		return fmt.Sprintf("https://checkout.xendit.co/web/%s", token), nil
	case domain.Manual:
		return "", fmt.Errorf("manual gateway has no payment link flow: %w", apperrors.ErrValidation)
	default:
		return "", fmt.Errorf("unknown payment gateway %q: %w", gateway, apperrors.ErrValidation)
	}
}
