package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
)

const (
	// DefaultRiskLTV is the risk adjusted LTV assigned before the credit
	// authority pushes a score, in basis points.
	DefaultRiskLTV uint64 = 5000
	// MinRiskLTV min acceptable risk adjusted LTV in basis points
	MinRiskLTV uint64 = 5000
	// MaxRiskLTV max acceptable risk adjusted LTV in basis points
	MaxRiskLTV uint64 = 8000
	// CreditScoreSize length of the sealed credit score blob
	CreditScoreSize = 32
)

// Account is the per-user risk account. It is created lazily on first
// deposit and never deleted.
type Account struct {
	ID                   uint64    `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	Owner                string    `sql:"size:36;unique_index:owner_idx" json:"owner"`
	CollateralDeposited  uint64    `sql:"default:0" json:"collateral_deposited"`
	AmountBorrowed       uint64    `sql:"default:0" json:"amount_borrowed"`
	LastUpdate           int64     `sql:"default:0" json:"last_update"`
	LoanCount            uint8     `sql:"default:0" json:"loan_count"`
	EncryptedCreditScore []byte    `sql:"size:32" json:"encrypted_credit_score,omitempty"`
	RiskAdjustedLTV      uint64    `sql:"default:5000" json:"risk_adjusted_ltv"`
	SuccessfulRepayments uint16    `sql:"default:0" json:"successful_repayments"`
	Defaults             uint16    `sql:"default:0" json:"defaults"`
	Version              int64     `sql:"default:0" json:"version"`
	CreatedAt            time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt            time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// IAccountStore account store interface
type IAccountStore interface {
	Save(ctx context.Context, tx *db.DB, account *Account) error
	Find(ctx context.Context, owner string) (*Account, error)
	All(ctx context.Context) ([]*Account, error)
	Update(ctx context.Context, tx *db.DB, account *Account) error
}

// IAccountService account service interface
type IAccountService interface {
	EnsureInitialized(ctx context.Context, account *Account, owner string, now time.Time)
	Deposit(ctx context.Context, pool *Pool, account *Account, amount uint64, now time.Time)
	Withdraw(ctx context.Context, pool *Pool, account *Account, amount uint64, now time.Time) error
	UpdateCreditScore(ctx context.Context, pool *Pool, account *Account, caller string, encryptedScore []byte, newLTV uint64, now time.Time) error
	IsLiquidatable(ctx context.Context, account *Account, price uint64, liquidationThreshold uint64) bool
}
