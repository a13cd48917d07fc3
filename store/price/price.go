package price

import (
	"arcilend/core"
	"context"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

type priceStore struct {
	db *db.DB
}

// New new price store
func New(db *db.DB) core.IPriceStore {
	return &priceStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Price{})
		if err := tx.AutoMigrate(core.Price{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *priceStore) Save(ctx context.Context, tx *db.DB, price *core.Price) error {
	var latest core.Price
	if err := tx.Update().Order("id DESC").First(&latest).Error; err != nil {
		if !gorm.IsRecordNotFoundError(err) {
			return err
		}
	}

	if latest.ID > 0 {
		price.ID = latest.ID
		price.Version = latest.Version + 1
		update := tx.Update().Model(core.Price{}).
			Where("id=? and version=?", latest.ID, latest.Version).
			Updates(price)
		if update.Error != nil {
			return update.Error
		}

		if update.RowsAffected == 0 {
			return db.ErrOptimisticLock
		}

		return nil
	}

	return tx.Update().Create(price).Error
}

func (s *priceStore) Latest(ctx context.Context) (*core.Price, error) {
	var price core.Price
	if err := s.db.View().Order("id DESC").First(&price).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return &core.Price{}, nil
		}
		return nil, err
	}

	return &price, nil
}
