package loan

import (
	"arcilend/core"
	"arcilend/internal/ledger"
	"context"
	"time"
)

type loanService struct{}

// New new loan service
func New() core.ILoanService {
	return &loanService{}
}

// Open creates the borrower's loan slot or tops up the active one. Both
// borrowing ceilings are checked before any field changes, so a request
// passing one check and failing the other applies nothing.
func (s *loanService) Open(ctx context.Context, pool *core.Pool, account *core.Account, loan *core.Loan, principal uint64, now time.Time) error {
	if loan.IsLiquidated {
		return core.ErrAlreadyLiquidated
	}

	maxBorrow := ledger.MaxBorrow(account.CollateralDeposited, account.RiskAdjustedLTV)
	if principal > maxBorrow {
		return core.ErrExceedsRiskAdjustedLTV
	}

	ceiling := ledger.CollateralCeiling(account.CollateralDeposited, pool.CollateralRatio)
	if account.AmountBorrowed+principal > ceiling {
		return core.ErrUndercollateralized
	}

	ts := now.Unix()
	if loan.Borrower == "" {
		baseRate := ledger.CurrentInterestRate(pool.InterestRate, pool.UtilizationRate)
		loan.Borrower = account.Owner
		loan.UserAccountID = account.ID
		loan.CollateralAmount = account.CollateralDeposited
		loan.BorrowedAmount = principal
		loan.InterestRate = baseRate + ledger.RiskPremium(account.RiskAdjustedLTV)
		loan.StartTime = ts
		loan.LastAccrual = ts
		loan.AccruedInterest = 0

		if account.LoanCount < ledger.MaxLoanCount {
			account.LoanCount++
		}
	} else {
		// top up keeps the rate fixed at origination
		s.AccrueInterest(ctx, loan, now)
		loan.BorrowedAmount += principal
		loan.CollateralAmount = account.CollateralDeposited
	}

	account.AmountBorrowed += principal
	account.LastUpdate = ts

	pool.TotalBorrowed += principal
	pool.UtilizationRate = ledger.UtilizationRate(pool.TotalBorrowed, pool.TotalDeposits)

	return nil
}

// AccrueInterest advances the loan clock, adding simple linear interest.
// No-op when the clock did not move forward.
func (s *loanService) AccrueInterest(ctx context.Context, loan *core.Loan, now time.Time) {
	if loan.IsLiquidated {
		return
	}

	elapsed := now.Unix() - loan.LastAccrual
	if elapsed <= 0 {
		return
	}

	loan.AccruedInterest += ledger.Interest(loan.BorrowedAmount, loan.InterestRate, elapsed)
	loan.LastAccrual = now.Unix()
}

// Repay settles up to the total owed, interest before principal, and
// returns the overpayment to refund. Repaying a zero-debt loan is
// rejected with no state change.
func (s *loanService) Repay(ctx context.Context, pool *core.Pool, account *core.Account, loan *core.Loan, amount uint64, now time.Time) (uint64, error) {
	if loan.IsLiquidated {
		return 0, core.ErrAlreadyLiquidated
	}

	s.AccrueInterest(ctx, loan, now)

	owed := loan.TotalOwed()
	repay := amount
	if repay > owed {
		repay = owed
	}

	if repay == 0 {
		return 0, core.ErrInsufficientBalance
	}

	prevBorrowed := loan.BorrowedAmount
	if repay >= loan.AccruedInterest {
		principalPart := repay - loan.AccruedInterest
		loan.AccruedInterest = 0
		loan.BorrowedAmount -= principalPart

		account.AmountBorrowed = ledger.SaturatingSub(account.AmountBorrowed, principalPart)
		pool.TotalBorrowed = ledger.SaturatingSub(pool.TotalBorrowed, principalPart)
	} else {
		loan.AccruedInterest -= repay
	}

	if prevBorrowed > 0 && loan.BorrowedAmount == 0 {
		account.SuccessfulRepayments++
	}

	account.LastUpdate = now.Unix()
	pool.UtilizationRate = ledger.UtilizationRate(pool.TotalBorrowed, pool.TotalDeposits)

	return amount - repay, nil
}

// Liquidate settles a terminal loan: the liquidator covers the full debt
// and receives the collateral snapshot plus the 5% bonus. The oracle price
// is carried into the predicate, which compares collateral and debt in the
// same unit.
func (s *loanService) Liquidate(ctx context.Context, pool *core.Pool, account *core.Account, loan *core.Loan, payment, price uint64, now time.Time) (*core.LiquidationOutcome, error) {
	if loan.IsLiquidated {
		return nil, core.ErrAlreadyLiquidated
	}

	s.AccrueInterest(ctx, loan, now)

	if !ledger.IsLiquidatable(account.CollateralDeposited, account.AmountBorrowed, price, pool.LiquidationThreshold) {
		return nil, core.ErrLoanNotLiquidatable
	}

	owed := loan.TotalOwed()
	if payment < owed {
		return nil, core.ErrInsufficientBalance
	}

	bonus := ledger.LiquidationBonus(loan.CollateralAmount)
	outcome := &core.LiquidationOutcome{
		DebtRepaid:       owed,
		CollateralSeized: loan.CollateralAmount,
		Bonus:            bonus,
		Refund:           payment - owed,
	}

	loan.IsLiquidated = true

	account.AmountBorrowed = ledger.SaturatingSub(account.AmountBorrowed, loan.BorrowedAmount)
	account.CollateralDeposited = ledger.SaturatingSub(account.CollateralDeposited, loan.CollateralAmount)
	account.Defaults++
	account.LastUpdate = now.Unix()

	pool.TotalBorrowed = ledger.SaturatingSub(pool.TotalBorrowed, loan.BorrowedAmount)
	pool.TotalDeposits = ledger.SaturatingSub(pool.TotalDeposits, loan.CollateralAmount)
	pool.UtilizationRate = ledger.UtilizationRate(pool.TotalBorrowed, pool.TotalDeposits)

	return outcome, nil
}
