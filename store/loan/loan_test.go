package loan

import (
	"arcilend/core"
	"context"
	"path/filepath"
	"testing"

	"github.com/fox-one/pkg/store/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) *db.DB {
	database, err := db.Connect("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.Nil(t, err)
	require.Nil(t, db.Migrate(database))
	return database
}

func TestUpdateStaleVersion(t *testing.T) {
	database := testDB(t)
	defer database.Close()

	s := New(database)
	ctx := context.Background()

	const borrower = "0ad40a0e-b7d6-4763-bfbd-846a3e4f26a3"
	require.Nil(t, s.Save(ctx, database, &core.Loan{
		Borrower:       borrower,
		BorrowedAmount: 50_000,
		InterestRate:   700,
	}))

	first, err := s.Find(ctx, borrower)
	require.Nil(t, err)
	second, err := s.Find(ctx, borrower)
	require.Nil(t, err)

	first.BorrowedAmount = 0
	require.Nil(t, s.Update(ctx, database, first))

	// the second writer raced on the same version and must not report
	// success for a write that landed nowhere
	second.AccruedInterest = 99
	assert.Equal(t, db.ErrOptimisticLock, s.Update(ctx, database, second))

	current, err := s.Find(ctx, borrower)
	require.Nil(t, err)
	assert.Equal(t, uint64(0), current.BorrowedAmount)
	assert.Equal(t, uint64(0), current.AccruedInterest)
	assert.Equal(t, int64(1), current.Version)
}
