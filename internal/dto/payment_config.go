package dto

import "github.com/bukupintar/bukupintar_app/internal/core/domain"

// PaymentConfigResponse defines the data returned for the payment
// configuration. API keys are echoed back as stored; there is no
// secret handling layer in scope.
type PaymentConfigResponse struct {
	ActiveGateway  domain.PaymentGateway `json:"activeGateway"`
	MidtransAPIKey string                `json:"midtransApiKey"`
	XenditAPIKey   string                `json:"xenditApiKey"`
	IsSandbox      bool                  `json:"isSandbox"`
}

// ToPaymentConfigResponse converts a domain.PaymentConfig to PaymentConfigResponse DTO
func ToPaymentConfigResponse(cfg *domain.PaymentConfig) PaymentConfigResponse {
	return PaymentConfigResponse{
		ActiveGateway:  cfg.ActiveGateway,
		MidtransAPIKey: cfg.MidtransAPIKey,
		XenditAPIKey:   cfg.XenditAPIKey,
		IsSandbox:      cfg.IsSandbox,
	}
}

// PatchPaymentConfigRequest defines the partial update to the payment
// configuration. Use pointers to distinguish between zero-value updates
// and fields not provided.
type PatchPaymentConfigRequest struct {
	ActiveGateway  *domain.PaymentGateway `json:"activeGateway" binding:"omitempty,oneof=Midtrans Xendit Manual"`
	MidtransAPIKey *string                `json:"midtransApiKey"`
	XenditAPIKey   *string                `json:"xenditApiKey"`
	IsSandbox      *bool                  `json:"isSandbox"`
}

// ToDomainPatch converts the request to a domain.PaymentConfigPatch
func (r PatchPaymentConfigRequest) ToDomainPatch() domain.PaymentConfigPatch {
	return domain.PaymentConfigPatch{
		ActiveGateway:  r.ActiveGateway,
		MidtransAPIKey: r.MidtransAPIKey,
		XenditAPIKey:   r.XenditAPIKey,
		IsSandbox:      r.IsSandbox,
	}
}
