// Package ledger holds the pure arithmetic of the lending ledger: pool
// utilization, the dynamic interest rate, linear interest accrual and the
// risk predicates. Amounts are uint64 smallest units and ratios basis
// points; every product is widened through math/big so u64 * 10000 style
// intermediates cannot overflow.
package ledger

import "math/big"

const (
	// BpsBase 10000 bps = 100%
	BpsBase uint64 = 10_000
	// SecondsPerYear accrual denominator for the annual rate
	SecondsPerYear uint64 = 31_536_000

	// MaxInterestRate upper bound of the configurable base rate
	MaxInterestRate uint64 = 10_000
	// MinCollateralRatio lower bound of the pool collateral ratio
	MinCollateralRatio uint64 = 12_000
	// MaxCollateralRatio upper bound of the pool collateral ratio
	MaxCollateralRatio uint64 = 30_000

	// OptimalUtilization utilization point where the rate surcharge starts
	OptimalUtilization uint64 = 8_000
	// UtilizationSlope surcharge bps per utilization bps above optimal
	UtilizationSlope uint64 = 5

	// RiskPremiumBps surcharge for borrowers at or below the premium LTV
	RiskPremiumBps uint64 = 200
	// PremiumFreeLTV risk adjusted LTV above which no premium applies
	PremiumFreeLTV uint64 = 7_000

	// LiquidationBonusBps liquidator bonus on seized collateral
	LiquidationBonusBps uint64 = 500

	// MaxLoanCount loan counter saturation point
	MaxLoanCount uint8 = 255
)

var bpsBase = new(big.Int).SetUint64(BpsBase)

// mulDiv computes a * b / c rounded down with a widened intermediate.
func mulDiv(a, b, c uint64) uint64 {
	if c == 0 {
		return 0
	}
	n := new(big.Int).SetUint64(a)
	n.Mul(n, new(big.Int).SetUint64(b))
	n.Quo(n, new(big.Int).SetUint64(c))
	return n.Uint64()
}

// UtilizationRate total_borrowed * 10000 / total_deposits rounded down,
// zero when the pool holds no deposits
func UtilizationRate(totalBorrowed, totalDeposits uint64) uint64 {
	if totalDeposits == 0 {
		return 0
	}
	return mulDiv(totalBorrowed, BpsBase, totalDeposits)
}

// CurrentInterestRate base rate plus a linear penalty above optimal
// utilization. Pure function of pool state, never persisted.
func CurrentInterestRate(baseRate, utilizationRate uint64) uint64 {
	if utilizationRate > OptimalUtilization {
		return baseRate + (utilizationRate-OptimalUtilization)*UtilizationSlope
	}
	return baseRate
}

// RiskPremium two-tier surcharge fixed at origination
func RiskPremium(riskAdjustedLTV uint64) uint64 {
	if riskAdjustedLTV > PremiumFreeLTV {
		return 0
	}
	return RiskPremiumBps
}

// MaxBorrow per-user ceiling from the risk adjusted LTV
func MaxBorrow(collateralDeposited, riskAdjustedLTV uint64) uint64 {
	return mulDiv(collateralDeposited, riskAdjustedLTV, BpsBase)
}

// CollateralCeiling pool-wide ceiling from the collateral ratio
func CollateralCeiling(collateralDeposited, collateralRatio uint64) uint64 {
	return mulDiv(collateralDeposited, collateralRatio, BpsBase)
}

// Interest simple linear interest over elapsed seconds:
// borrowed * rate * elapsed / (SecondsPerYear * 10000)
func Interest(borrowedAmount, rateBps uint64, elapsed int64) uint64 {
	if borrowedAmount == 0 || rateBps == 0 || elapsed <= 0 {
		return 0
	}
	n := new(big.Int).SetUint64(borrowedAmount)
	n.Mul(n, new(big.Int).SetUint64(rateBps))
	n.Mul(n, new(big.Int).SetInt64(elapsed))
	d := new(big.Int).SetUint64(SecondsPerYear)
	d.Mul(d, bpsBase)
	n.Quo(n, d)
	return n.Uint64()
}

// IsLiquidatable strict threshold predicate: debt-free accounts are never
// liquidatable, and an account exactly at the boundary is safe. The price
// argument is carried through untouched; collateral and debt are compared
// in the same unit.
func IsLiquidatable(collateralDeposited, amountBorrowed, _price, liquidationThreshold uint64) bool {
	if amountBorrowed == 0 {
		return false
	}
	return collateralDeposited < mulDiv(amountBorrowed, liquidationThreshold, BpsBase)
}

// LiquidationBonus 5% of the seized collateral snapshot
func LiquidationBonus(collateralAmount uint64) uint64 {
	return mulDiv(collateralAmount, LiquidationBonusBps, BpsBase)
}

// SaturatingSub a - b clamped at zero
func SaturatingSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}
