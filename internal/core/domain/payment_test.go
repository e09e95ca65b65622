package domain_test

import (
	"testing"

	"github.com/bukupintar/bukupintar_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func basePaymentConfig() domain.PaymentConfig {
	return domain.PaymentConfig{
		ActiveGateway:  domain.Midtrans,
		MidtransAPIKey: "SB-Mid-client-xxxxxxxx",
		XenditAPIKey:   "xnd_development_xxxxxxxx",
		IsSandbox:      true,
	}
}

func TestPaymentConfig_Apply_EmptyPatchIsIdentity(t *testing.T) {
	cfg := basePaymentConfig()
	assert.Equal(t, cfg, cfg.Apply(domain.PaymentConfigPatch{}))
}

func TestPaymentConfig_Apply_SingleFieldDoesNotClobber(t *testing.T) {
	cfg := basePaymentConfig()

	newKey := "SB-Mid-client-rotated"
	patched := cfg.Apply(domain.PaymentConfigPatch{MidtransAPIKey: &newKey})

	assert.Equal(t, newKey, patched.MidtransAPIKey)
	assert.Equal(t, cfg.XenditAPIKey, patched.XenditAPIKey)
	assert.Equal(t, cfg.ActiveGateway, patched.ActiveGateway)
	assert.Equal(t, cfg.IsSandbox, patched.IsSandbox)
}

func TestPaymentConfig_Apply_SequentialPatchesPreserveBoth(t *testing.T) {
	cfg := basePaymentConfig()

	gw := domain.Xendit
	patched := cfg.Apply(domain.PaymentConfigPatch{ActiveGateway: &gw})

	sandbox := false
	patched = patched.Apply(domain.PaymentConfigPatch{IsSandbox: &sandbox})

	assert.Equal(t, domain.Xendit, patched.ActiveGateway)
	assert.False(t, patched.IsSandbox)
	assert.Equal(t, cfg.MidtransAPIKey, patched.MidtransAPIKey)
	assert.Equal(t, cfg.XenditAPIKey, patched.XenditAPIKey)
}

func TestPaymentGateway_IsValid(t *testing.T) {
	assert.True(t, domain.Midtrans.IsValid())
	assert.True(t, domain.Xendit.IsValid())
	assert.True(t, domain.Manual.IsValid())
	assert.False(t, domain.PaymentGateway("Stripe").IsValid())
}
