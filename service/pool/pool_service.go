package pool

import (
	"arcilend/core"
	"arcilend/internal/ledger"
	"context"
)

type poolService struct{}

// New new pool service
func New() core.IPoolService {
	return &poolService{}
}

// Initialize validates the rate configuration and zeroes the accumulators.
// Bounds are rejected before any field is written.
func (s *poolService) Initialize(ctx context.Context, pool *core.Pool, authority string, interestRate, collateralRatio, liquidationThreshold uint64, creditAuthorityID, oracleID string) error {
	if collateralRatio < ledger.MinCollateralRatio || collateralRatio > ledger.MaxCollateralRatio {
		return core.ErrInvalidCollateralRatio
	}

	if interestRate > ledger.MaxInterestRate {
		return core.ErrInvalidInterestRate
	}

	if liquidationThreshold >= collateralRatio {
		return core.ErrInvalidLiquidationThreshold
	}

	pool.Authority = authority
	pool.InterestRate = interestRate
	pool.CollateralRatio = collateralRatio
	pool.LiquidationThreshold = liquidationThreshold
	pool.CreditAuthorityID = creditAuthorityID
	pool.OracleID = oracleID
	pool.TotalDeposits = 0
	pool.TotalBorrowed = 0
	pool.UtilizationRate = 0
	pool.TotalFees = 0

	return nil
}

func (s *poolService) RecomputeUtilization(ctx context.Context, pool *core.Pool) {
	pool.UtilizationRate = ledger.UtilizationRate(pool.TotalBorrowed, pool.TotalDeposits)
}

func (s *poolService) CurrentInterestRate(ctx context.Context, pool *core.Pool) uint64 {
	return ledger.CurrentInterestRate(pool.InterestRate, pool.UtilizationRate)
}
