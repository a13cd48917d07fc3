package account

import (
	"bytes"
	"context"
	"testing"
	"time"

	"arcilend/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureInitialized(t *testing.T) {
	ctx := context.Background()
	s := New()
	now := time.Unix(1_700_000_000, 0)

	account := &core.Account{}
	s.EnsureInitialized(ctx, account, "alice", now)
	assert.Equal(t, "alice", account.Owner)
	assert.Equal(t, core.DefaultRiskLTV, account.RiskAdjustedLTV)
	assert.Equal(t, now.Unix(), account.LastUpdate)

	// idempotent: a second call must not reset live state
	account.CollateralDeposited = 42
	s.EnsureInitialized(ctx, account, "alice", now.Add(time.Hour))
	assert.Equal(t, uint64(42), account.CollateralDeposited)
	assert.Equal(t, now.Unix(), account.LastUpdate)
}

func TestDepositAndWithdraw(t *testing.T) {
	ctx := context.Background()
	s := New()
	now := time.Unix(1_700_000_000, 0)

	pool := &core.Pool{}
	account := &core.Account{}
	s.EnsureInitialized(ctx, account, "alice", now)

	s.Deposit(ctx, pool, account, 100_000, now)
	assert.Equal(t, uint64(100_000), account.CollateralDeposited)
	assert.Equal(t, uint64(100_000), pool.TotalDeposits)

	err := s.Withdraw(ctx, pool, account, 100_001, now)
	assert.Equal(t, core.ErrInsufficientBalance, err)

	require.NoError(t, s.Withdraw(ctx, pool, account, 40_000, now))
	assert.Equal(t, uint64(60_000), account.CollateralDeposited)
	assert.Equal(t, uint64(60_000), pool.TotalDeposits)

	account.AmountBorrowed = 1
	err = s.Withdraw(ctx, pool, account, 1, now)
	assert.Equal(t, core.ErrActiveLoansExist, err)
}

func TestUpdateCreditScore(t *testing.T) {
	ctx := context.Background()
	s := New()
	now := time.Unix(1_700_000_000, 0)

	pool := &core.Pool{CreditAuthorityID: "mpc"}
	account := &core.Account{}
	s.EnsureInitialized(ctx, account, "alice", now)

	score := bytes.Repeat([]byte{0xAB}, core.CreditScoreSize)

	err := s.UpdateCreditScore(ctx, pool, account, "mallory", score, 6000, now)
	assert.Equal(t, core.ErrUnauthorizedMPCUpdate, err)

	err = s.UpdateCreditScore(ctx, pool, account, "mpc", score, 4999, now)
	assert.Equal(t, core.ErrInvalidCreditScore, err)
	err = s.UpdateCreditScore(ctx, pool, account, "mpc", score, 8001, now)
	assert.Equal(t, core.ErrInvalidCreditScore, err)

	err = s.UpdateCreditScore(ctx, pool, account, "mpc", score[:16], 6000, now)
	assert.Equal(t, core.ErrInvalidArgument, err)

	require.NoError(t, s.UpdateCreditScore(ctx, pool, account, "mpc", score, 8000, now))
	assert.Equal(t, uint64(8000), account.RiskAdjustedLTV)
	assert.Equal(t, score, account.EncryptedCreditScore)
}

func TestIsLiquidatableBoundary(t *testing.T) {
	ctx := context.Background()
	s := New()

	account := &core.Account{AmountBorrowed: 50_000, CollateralDeposited: 60_000}
	assert.False(t, s.IsLiquidatable(ctx, account, 1, 12_000))

	account.CollateralDeposited = 59_999
	assert.True(t, s.IsLiquidatable(ctx, account, 1, 12_000))

	account.AmountBorrowed = 0
	assert.False(t, s.IsLiquidatable(ctx, account, 1, 12_000))
}
