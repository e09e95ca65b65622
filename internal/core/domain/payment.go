package domain

// PaymentGateway identifies the provider used to collect invoice payments.
type PaymentGateway string

const (
	Midtrans PaymentGateway = "Midtrans"
	Xendit   PaymentGateway = "Xendit"
	Manual   PaymentGateway = "Manual"
)

// IsValid reports whether the value is a known payment gateway.
func (g PaymentGateway) IsValid() bool {
	return g == Midtrans || g == Xendit || g == Manual
}

// PaymentConfig holds the active payment gateway selection and the
// per-gateway credentials. Exactly one gateway is active at a time.
type PaymentConfig struct {
	ActiveGateway  PaymentGateway `json:"activeGateway"`
	MidtransAPIKey string         `json:"midtransApiKey"`
	XenditAPIKey   string         `json:"xenditApiKey"`
	IsSandbox      bool           `json:"isSandbox"`
}

// PaymentConfigPatch is a partial update to PaymentConfig. Nil fields
// are left unchanged, so patching one gateway's key never clobbers
// the other's.
type PaymentConfigPatch struct {
	ActiveGateway  *PaymentGateway `json:"activeGateway"`
	MidtransAPIKey *string         `json:"midtransApiKey"`
	XenditAPIKey   *string         `json:"xenditApiKey"`
	IsSandbox      *bool           `json:"isSandbox"`
}

// Apply merges the patch into a copy of the config and returns it.
// An empty patch returns the config unchanged.
func (c PaymentConfig) Apply(patch PaymentConfigPatch) PaymentConfig {
	merged := c
	if patch.ActiveGateway != nil {
		merged.ActiveGateway = *patch.ActiveGateway
	}
	if patch.MidtransAPIKey != nil {
		merged.MidtransAPIKey = *patch.MidtransAPIKey
	}
	if patch.XenditAPIKey != nil {
		merged.XenditAPIKey = *patch.XenditAPIKey
	}
	if patch.IsSandbox != nil {
		merged.IsSandbox = *patch.IsSandbox
	}
	return merged
}
