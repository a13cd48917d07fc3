package pool

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

	require.Nil(t, s.Save(ctx, database, &core.Pool{
		Authority:            "a60af3ef-5b5c-4436-af17-fdefe4b1b97f",
		InterestRate:         500,
		CollateralRatio:      15_000,
		LiquidationThreshold: 12_000,
		TotalDeposits:        100_000,
	}))

	first, err := s.Find(ctx)
	require.Nil(t, err)
	second, err := s.Find(ctx)
	require.Nil(t, err)

	first.TotalBorrowed = 50_000
	require.Nil(t, s.Update(ctx, database, first))

	second.TotalDeposits = 0
	assert.Equal(t, db.ErrOptimisticLock, s.Update(ctx, database, second))

	current, err := s.Find(ctx)
	require.Nil(t, err)
	assert.Equal(t, uint64(50_000), current.TotalBorrowed)
	assert.Equal(t, uint64(100_000), current.TotalDeposits)
	assert.Equal(t, int64(1), current.Version)
}
