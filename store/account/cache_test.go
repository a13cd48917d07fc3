package account

import (
	"arcilend/core"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

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

func TestCacheSkipsRolledBackWrites(t *testing.T) {
	database := testDB(t)
	defer database.Close()

	inner := New(database)
	cached := Cache(inner, time.Minute)
	ctx := context.Background()

	const owner = "d9a95c18-6bd6-47cc-a18f-88c95a6ca499"
	require.Nil(t, cached.Save(ctx, database, &core.Account{
		Owner:               owner,
		CollateralDeposited: 100,
		RiskAdjustedLTV:     core.DefaultRiskLTV,
	}))

	warm, err := cached.Find(ctx, owner)
	require.Nil(t, err)
	require.Equal(t, uint64(100), warm.CollateralDeposited)

	// the write lands inside a transaction that later fails; the cache
	// must not serve the mutation the database never committed
	failed := errors.New("event write failed")
	err = database.Tx(func(tx *db.DB) error {
		mutated := *warm
		mutated.CollateralDeposited = 999_999
		if err := cached.Update(ctx, tx, &mutated); err != nil {
			return err
		}

		return failed
	})
	assert.Equal(t, failed, err)

	got, err := cached.Find(ctx, owner)
	require.Nil(t, err)
	assert.Equal(t, uint64(100), got.CollateralDeposited)
	assert.Equal(t, int64(0), got.Version)

	direct, err := inner.Find(ctx, owner)
	require.Nil(t, err)
	assert.Equal(t, uint64(100), direct.CollateralDeposited)
	assert.Equal(t, int64(0), direct.Version)
}

func TestUpdateStaleVersion(t *testing.T) {
	database := testDB(t)
	defer database.Close()

	s := New(database)
	ctx := context.Background()

	const owner = "83dee0a4-f3dd-4b31-ad54-5a8d0e0b2a74"
	require.Nil(t, s.Save(ctx, database, &core.Account{
		Owner:               owner,
		CollateralDeposited: 100_000,
		RiskAdjustedLTV:     core.DefaultRiskLTV,
	}))

	first, err := s.Find(ctx, owner)
	require.Nil(t, err)
	second, err := s.Find(ctx, owner)
	require.Nil(t, err)

	first.AmountBorrowed = 50_000
	require.Nil(t, s.Update(ctx, database, first))

	second.CollateralDeposited = 0
	assert.Equal(t, db.ErrOptimisticLock, s.Update(ctx, database, second))

	current, err := s.Find(ctx, owner)
	require.Nil(t, err)
	assert.Equal(t, uint64(50_000), current.AmountBorrowed)
	assert.Equal(t, uint64(100_000), current.CollateralDeposited)
	assert.Equal(t, int64(1), current.Version)
}
