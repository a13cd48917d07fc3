package views

import (
	"arcilend/core"

	"github.com/shopspring/decimal"
)

// Pool pool view with humanized percentages
type Pool struct {
	core.Pool
	InterestPercent     decimal.Decimal `json:"interest_percent"`
	UtilizationPercent  decimal.Decimal `json:"utilization_percent"`
	CurrentRatePercent  decimal.Decimal `json:"current_rate_percent"`
	CollateralFactor    decimal.Decimal `json:"collateral_factor"`
	LiquidationFactor   decimal.Decimal `json:"liquidation_factor"`
}

// Account risk account view
type Account struct {
	core.Account
	RiskAdjustedLTVPercent decimal.Decimal `json:"risk_adjusted_ltv_percent"`
}

// Loan loan view
type Loan struct {
	core.Loan
	TotalOwed   uint64          `json:"total_owed"`
	RatePercent decimal.Decimal `json:"rate_percent"`
}

// Percent humanize a basis-point ratio as a percentage
func Percent(bps uint64) decimal.Decimal {
	return decimal.New(int64(bps), -2)
}

// Factor humanize a basis-point ratio as a plain factor
func Factor(bps uint64) decimal.Decimal {
	return decimal.New(int64(bps), -4)
}
