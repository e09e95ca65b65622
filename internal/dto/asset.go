package dto

import (
	"github.com/bukupintar/bukupintar_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FixedAssetResponse defines the data returned for a fixed asset,
// including the derived depreciation figures.
type FixedAssetResponse struct {
	AssetID                 string          `json:"assetID"`
	Name                    string          `json:"name"`
	AcquisitionDate         string          `json:"acquisitionDate"`
	Cost                    decimal.Decimal `json:"cost"`
	UsefulLifeYears         int64           `json:"usefulLifeYears"`
	SalvageValue            decimal.Decimal `json:"salvageValue"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	AnnualDepreciation      decimal.Decimal `json:"annualDepreciation"`
	BookValue               decimal.Decimal `json:"bookValue"`
}

// ToFixedAssetResponse converts a domain.FixedAsset to FixedAssetResponse DTO
func ToFixedAssetResponse(a *domain.FixedAsset) FixedAssetResponse {
	return FixedAssetResponse{
		AssetID:                 a.AssetID,
		Name:                    a.Name,
		AcquisitionDate:         a.AcquisitionDate,
		Cost:                    a.Cost,
		UsefulLifeYears:         a.UsefulLifeYears,
		SalvageValue:            a.SalvageValue,
		AccumulatedDepreciation: a.AccumulatedDepreciation,
		AnnualDepreciation:      a.AnnualDepreciation(),
		BookValue:               a.BookValue(),
	}
}

// ListAssetsResponse wraps the list of fixed assets.
type ListAssetsResponse struct {
	Assets []FixedAssetResponse `json:"assets"`
}
