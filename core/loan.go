package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
)

// Loan is the single active loan slot per borrower. A fully repaid loan
// stays active with zero balance; a liquidated loan is terminal.
type Loan struct {
	ID               uint64    `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	Borrower         string    `sql:"size:36;unique_index:borrower_idx" json:"borrower"`
	UserAccountID    uint64    `sql:"default:0" json:"user_account_id"`
	CollateralAmount uint64    `sql:"default:0" json:"collateral_amount"`
	BorrowedAmount   uint64    `sql:"default:0" json:"borrowed_amount"`
	InterestRate     uint64    `sql:"default:0" json:"interest_rate"`
	StartTime        int64     `sql:"default:0" json:"start_time"`
	LastAccrual      int64     `sql:"default:0" json:"last_accrual"`
	AccruedInterest  uint64    `sql:"default:0" json:"accrued_interest"`
	IsLiquidated     bool      `sql:"default:false" json:"is_liquidated"`
	Version          int64     `sql:"default:0" json:"version"`
	CreatedAt        time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TotalOwed outstanding principal plus interest accrued so far
func (l *Loan) TotalOwed() uint64 {
	return l.BorrowedAmount + l.AccruedInterest
}

// ILoanStore loan store interface
type ILoanStore interface {
	Save(ctx context.Context, tx *db.DB, loan *Loan) error
	Find(ctx context.Context, borrower string) (*Loan, error)
	AllActive(ctx context.Context) ([]*Loan, error)
	Update(ctx context.Context, tx *db.DB, loan *Loan) error
}

// ILoanService loan service interface
type ILoanService interface {
	Open(ctx context.Context, pool *Pool, account *Account, loan *Loan, principal uint64, now time.Time) error
	AccrueInterest(ctx context.Context, loan *Loan, now time.Time)
	Repay(ctx context.Context, pool *Pool, account *Account, loan *Loan, amount uint64, now time.Time) (uint64, error)
	Liquidate(ctx context.Context, pool *Pool, account *Account, loan *Loan, payment, price uint64, now time.Time) (*LiquidationOutcome, error)
}

// LiquidationOutcome settlement amounts of a finished liquidation
type LiquidationOutcome struct {
	DebtRepaid       uint64 `json:"debt_repaid"`
	CollateralSeized uint64 `json:"collateral_seized"`
	Bonus            uint64 `json:"bonus"`
	Refund           uint64 `json:"refund"`
}
