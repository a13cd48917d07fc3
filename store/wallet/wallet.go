package wallet

import (
	"arcilend/core"
	"context"

	"github.com/fox-one/pkg/store/db"
)

type walletStore struct {
	db *db.DB
}

// New new wallet store
func New(db *db.DB) core.IWalletStore {
	return &walletStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		if err := db.Update().Model(core.Output{}).AutoMigrate(core.Output{}).Error; err != nil {
			return err
		}

		if err := db.Update().Model(core.Transfer{}).AutoMigrate(core.Transfer{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *walletStore) CreateOutput(ctx context.Context, output *core.Output) error {
	return s.db.Update().Where("trace_id=?", output.TraceID).FirstOrCreate(output).Error
}

func (s *walletStore) ListOutputs(ctx context.Context, fromID uint64, limit int) ([]*core.Output, error) {
	var outputs []*core.Output
	if err := s.db.View().
		Where("id>?", fromID).
		Order("id ASC").
		Limit(limit).
		Find(&outputs).Error; err != nil {
		return nil, err
	}

	return outputs, nil
}

func (s *walletStore) CreateTransfers(ctx context.Context, tx *db.DB, transfers []*core.Transfer) error {
	for _, transfer := range transfers {
		if err := tx.Update().Where("trace_id=?", transfer.TraceID).FirstOrCreate(transfer).Error; err != nil {
			return err
		}
	}

	return nil
}

func (s *walletStore) ListTransfers(ctx context.Context, limit int) ([]*core.Transfer, error) {
	var transfers []*core.Transfer
	if err := s.db.View().Order("id ASC").Limit(limit).Find(&transfers).Error; err != nil {
		return nil, err
	}

	return transfers, nil
}
