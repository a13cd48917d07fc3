package pool

import (
	"arcilend/core"
	"context"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

type poolStore struct {
	db *db.DB
}

// New new pool store
func New(db *db.DB) core.IPoolStore {
	return &poolStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Pool{})
		if err := tx.AutoMigrate(core.Pool{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *poolStore) Save(ctx context.Context, tx *db.DB, pool *core.Pool) error {
	return tx.Update().Create(pool).Error
}

func (s *poolStore) Find(ctx context.Context) (*core.Pool, error) {
	var pool core.Pool
	if err := s.db.View().First(&pool).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return &core.Pool{}, nil
		}
		return nil, err
	}

	return &pool, nil
}

func (s *poolStore) Update(ctx context.Context, tx *db.DB, pool *core.Pool) error {
	version := pool.Version
	pool.Version++

	// explicit column map so accumulators dropping back to zero are written
	updates := map[string]interface{}{
		"total_deposits":   pool.TotalDeposits,
		"total_borrowed":   pool.TotalBorrowed,
		"utilization_rate": pool.UtilizationRate,
		"total_fees":       pool.TotalFees,
		"version":          pool.Version,
	}

	update := tx.Update().Model(core.Pool{}).
		Where("id=? and version=?", pool.ID, version).
		Updates(updates)
	if update.Error != nil {
		return update.Error
	}

	if update.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	return nil
}
