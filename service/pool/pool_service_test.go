package pool

import (
	"context"
	"testing"

	"arcilend/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeValidation(t *testing.T) {
	ctx := context.Background()
	s := New()

	cases := []struct {
		name      string
		rate      uint64
		ratio     uint64
		threshold uint64
		want      error
	}{
		{"ratio too low", 500, 11_999, 10_000, core.ErrInvalidCollateralRatio},
		{"ratio too high", 500, 30_001, 10_000, core.ErrInvalidCollateralRatio},
		{"rate too high", 10_001, 15_000, 12_000, core.ErrInvalidInterestRate},
		{"threshold equals ratio", 500, 15_000, 15_000, core.ErrInvalidLiquidationThreshold},
		{"threshold above ratio", 500, 15_000, 15_001, core.ErrInvalidLiquidationThreshold},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pool := &core.Pool{}
			err := s.Initialize(ctx, pool, "authority", c.rate, c.ratio, c.threshold, "credit", "oracle")
			assert.Equal(t, c.want, err)
			// rejected configs must not touch the pool
			assert.Equal(t, "", pool.Authority)
		})
	}
}

func TestInitializeBounds(t *testing.T) {
	ctx := context.Background()
	s := New()

	for _, ratio := range []uint64{12_000, 30_000} {
		pool := &core.Pool{TotalDeposits: 99, TotalBorrowed: 42}
		require.NoError(t, s.Initialize(ctx, pool, "authority", 10_000, ratio, ratio-1, "credit", "oracle"))
		assert.Equal(t, uint64(0), pool.TotalDeposits)
		assert.Equal(t, uint64(0), pool.TotalBorrowed)
		assert.Equal(t, uint64(0), pool.UtilizationRate)
		assert.Equal(t, "credit", pool.CreditAuthorityID)
		assert.Equal(t, "oracle", pool.OracleID)
	}
}

func TestCurrentInterestRate(t *testing.T) {
	ctx := context.Background()
	s := New()

	pool := &core.Pool{InterestRate: 500}

	pool.TotalDeposits = 100_000
	pool.TotalBorrowed = 80_000
	s.RecomputeUtilization(ctx, pool)
	assert.Equal(t, uint64(8000), pool.UtilizationRate)
	assert.Equal(t, uint64(500), s.CurrentInterestRate(ctx, pool))

	pool.TotalBorrowed = 90_000
	s.RecomputeUtilization(ctx, pool)
	assert.Equal(t, uint64(9000), pool.UtilizationRate)
	assert.Equal(t, uint64(500+1000*5), s.CurrentInterestRate(ctx, pool))

	pool.TotalDeposits = 0
	pool.TotalBorrowed = 0
	s.RecomputeUtilization(ctx, pool)
	assert.Equal(t, uint64(0), pool.UtilizationRate)
}
