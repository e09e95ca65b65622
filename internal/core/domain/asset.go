package domain

import "github.com/shopspring/decimal"

// FixedAsset represents a capital asset depreciated straight-line
// over its useful life.
type FixedAsset struct {
	AssetID                 string          `json:"assetID"`
	Name                    string          `json:"name"`
	AcquisitionDate         string          `json:"acquisitionDate"` // YYYY-MM-DD
	Cost                    decimal.Decimal `json:"cost"`
	UsefulLifeYears         int64           `json:"usefulLifeYears"`
	SalvageValue            decimal.Decimal `json:"salvageValue"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
}

// AnnualDepreciation returns the straight-line yearly depreciation,
// (cost - salvageValue) / usefulLifeYears. A zero useful life yields
// zero rather than dividing.
func (a FixedAsset) AnnualDepreciation() decimal.Decimal {
	if a.UsefulLifeYears <= 0 {
		return decimal.Zero
	}
	return a.Cost.Sub(a.SalvageValue).Div(decimal.NewFromInt(a.UsefulLifeYears))
}

// BookValue returns cost less accumulated depreciation.
func (a FixedAsset) BookValue() decimal.Decimal {
	return a.Cost.Sub(a.AccumulatedDepreciation)
}
