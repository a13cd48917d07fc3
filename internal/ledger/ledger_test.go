package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUtilizationRate(t *testing.T) {
	assert.Equal(t, uint64(0), UtilizationRate(0, 0))
	assert.Equal(t, uint64(0), UtilizationRate(12345, 0))
	assert.Equal(t, uint64(5000), UtilizationRate(50_000, 100_000))
	// rounded down
	assert.Equal(t, uint64(3333), UtilizationRate(1, 3))
	// u64 * 10000 must not overflow
	const huge = uint64(1) << 62
	assert.Equal(t, uint64(10_000), UtilizationRate(huge, huge))
}

func TestCurrentInterestRate(t *testing.T) {
	assert.Equal(t, uint64(500), CurrentInterestRate(500, 0))
	assert.Equal(t, uint64(500), CurrentInterestRate(500, 8000))
	assert.Equal(t, uint64(505), CurrentInterestRate(500, 8001))
	assert.Equal(t, uint64(500+2000*5), CurrentInterestRate(500, 10_000))
}

func TestRiskPremium(t *testing.T) {
	assert.Equal(t, uint64(200), RiskPremium(5000))
	assert.Equal(t, uint64(200), RiskPremium(7000))
	assert.Equal(t, uint64(0), RiskPremium(7001))
	assert.Equal(t, uint64(0), RiskPremium(8000))
}

func TestMaxBorrow(t *testing.T) {
	assert.Equal(t, uint64(50_000), MaxBorrow(100_000, 5000))
	assert.Equal(t, uint64(80_000), MaxBorrow(100_000, 8000))
	assert.Equal(t, uint64(0), MaxBorrow(0, 8000))
}

func TestInterestOneYear(t *testing.T) {
	// 50,000 at 700 bps over exactly one year yields 3,500
	got := Interest(50_000, 700, int64(SecondsPerYear))
	assert.Equal(t, uint64(3500), got)
}

func TestInterestLinearAdditive(t *testing.T) {
	const (
		principal = uint64(1_234_567)
		rate      = uint64(750)
	)

	full := Interest(principal, rate, 20_000_000)

	// accruing in two legs never exceeds the single accrual and the
	// truncation drift stays below one unit per leg
	split := Interest(principal, rate, 8_000_000) + Interest(principal, rate, 12_000_000)
	require.True(t, split <= full)
	require.True(t, full-split <= 1)
}

func TestInterestEdges(t *testing.T) {
	assert.Equal(t, uint64(0), Interest(0, 700, 1000))
	assert.Equal(t, uint64(0), Interest(50_000, 0, 1000))
	assert.Equal(t, uint64(0), Interest(50_000, 700, 0))
	// negative elapsed clamps to zero
	assert.Equal(t, uint64(0), Interest(50_000, 700, -5))
}

func TestIsLiquidatable(t *testing.T) {
	// no debt, never liquidatable
	assert.False(t, IsLiquidatable(0, 0, 1, 12_000))
	assert.False(t, IsLiquidatable(100_000, 0, 1, 12_000))

	// threshold 12000: debt 50,000 needs collateral below 60,000
	assert.True(t, IsLiquidatable(59_999, 50_000, 1, 12_000))
	// exactly at the boundary is safe, the inequality is strict
	assert.False(t, IsLiquidatable(60_000, 50_000, 1, 12_000))
	assert.False(t, IsLiquidatable(60_001, 50_000, 1, 12_000))
}

func TestLiquidationBonus(t *testing.T) {
	assert.Equal(t, uint64(5000), LiquidationBonus(100_000))
	assert.Equal(t, uint64(0), LiquidationBonus(0))
	assert.Equal(t, uint64(0), LiquidationBonus(19))
}

func TestSaturatingSub(t *testing.T) {
	assert.Equal(t, uint64(3), SaturatingSub(5, 2))
	assert.Equal(t, uint64(0), SaturatingSub(2, 5))
}
