package account

import (
	"arcilend/core"
	"arcilend/internal/ledger"
	"context"
	"time"
)

type accountService struct{}

// New new account service
func New() core.IAccountService {
	return &accountService{}
}

// EnsureInitialized idempotent lazy init. An account without an owner is
// the uninitialized sentinel.
func (s *accountService) EnsureInitialized(ctx context.Context, account *core.Account, owner string, now time.Time) {
	if account.Owner != "" {
		return
	}

	account.Owner = owner
	account.CollateralDeposited = 0
	account.AmountBorrowed = 0
	account.LoanCount = 0
	account.RiskAdjustedLTV = core.DefaultRiskLTV
	account.SuccessfulRepayments = 0
	account.Defaults = 0
	account.LastUpdate = now.Unix()
}

// Deposit moves amount into the user collateral and the pool deposits as
// one unit; the caller persists both records in the same transaction.
func (s *accountService) Deposit(ctx context.Context, pool *core.Pool, account *core.Account, amount uint64, now time.Time) {
	account.CollateralDeposited += amount
	account.LastUpdate = now.Unix()

	pool.TotalDeposits += amount
	pool.UtilizationRate = ledger.UtilizationRate(pool.TotalBorrowed, pool.TotalDeposits)
}

func (s *accountService) Withdraw(ctx context.Context, pool *core.Pool, account *core.Account, amount uint64, now time.Time) error {
	if account.AmountBorrowed != 0 {
		return core.ErrActiveLoansExist
	}

	if amount > account.CollateralDeposited {
		return core.ErrInsufficientBalance
	}

	account.CollateralDeposited -= amount
	account.LastUpdate = now.Unix()

	pool.TotalDeposits = ledger.SaturatingSub(pool.TotalDeposits, amount)
	pool.UtilizationRate = ledger.UtilizationRate(pool.TotalBorrowed, pool.TotalDeposits)

	return nil
}

// UpdateCreditScore stores the sealed score and the risk adjusted LTV the
// credit authority derived off-band. The blob stays opaque here, only the
// caller identity and the LTV range are checked.
func (s *accountService) UpdateCreditScore(ctx context.Context, pool *core.Pool, account *core.Account, caller string, encryptedScore []byte, newLTV uint64, now time.Time) error {
	if caller != pool.CreditAuthorityID {
		return core.ErrUnauthorizedMPCUpdate
	}

	if newLTV < core.MinRiskLTV || newLTV > core.MaxRiskLTV {
		return core.ErrInvalidCreditScore
	}

	if len(encryptedScore) != core.CreditScoreSize {
		return core.ErrInvalidArgument
	}

	account.EncryptedCreditScore = encryptedScore
	account.RiskAdjustedLTV = newLTV
	account.LastUpdate = now.Unix()

	return nil
}

func (s *accountService) IsLiquidatable(ctx context.Context, account *core.Account, price uint64, liquidationThreshold uint64) bool {
	return ledger.IsLiquidatable(account.CollateralDeposited, account.AmountBorrowed, price, liquidationThreshold)
}
