package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
)

// Pool is the singleton market aggregate. All amounts are in smallest
// asset units, all ratios in basis points.
type Pool struct {
	ID                   uint64    `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	Authority            string    `sql:"size:36" json:"authority"`
	TotalDeposits        uint64    `sql:"default:0" json:"total_deposits"`
	TotalBorrowed        uint64    `sql:"default:0" json:"total_borrowed"`
	InterestRate         uint64    `sql:"default:0" json:"interest_rate"`
	CollateralRatio      uint64    `sql:"default:0" json:"collateral_ratio"`
	LiquidationThreshold uint64    `sql:"default:0" json:"liquidation_threshold"`
	CreditAuthorityID    string    `sql:"size:36" json:"credit_authority_id"`
	OracleID             string    `sql:"size:36" json:"oracle_id"`
	UtilizationRate      uint64    `sql:"default:0" json:"utilization_rate"`
	TotalFees            uint64    `sql:"default:0" json:"total_fees"`
	Version              int64     `sql:"default:0" json:"version"`
	CreatedAt            time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt            time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// IPoolStore pool store interface
type IPoolStore interface {
	Save(ctx context.Context, tx *db.DB, pool *Pool) error
	Find(ctx context.Context) (*Pool, error)
	Update(ctx context.Context, tx *db.DB, pool *Pool) error
}

// IPoolService pool service interface
type IPoolService interface {
	Initialize(ctx context.Context, pool *Pool, authority string, interestRate, collateralRatio, liquidationThreshold uint64, creditAuthorityID, oracleID string) error
	RecomputeUtilization(ctx context.Context, pool *Pool)
	CurrentInterestRate(ctx context.Context, pool *Pool) uint64
}
