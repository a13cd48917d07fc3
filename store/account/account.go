package account

import (
	"arcilend/core"
	"context"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

type accountStore struct {
	db *db.DB
}

// New new account store
func New(db *db.DB) core.IAccountStore {
	return &accountStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Account{})
		if err := tx.AutoMigrate(core.Account{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *accountStore) Save(ctx context.Context, tx *db.DB, account *core.Account) error {
	return tx.Update().Where("owner=?", account.Owner).FirstOrCreate(account).Error
}

func (s *accountStore) Find(ctx context.Context, owner string) (*core.Account, error) {
	var account core.Account
	if err := s.db.View().Where("owner=?", owner).First(&account).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return &core.Account{}, nil
		}
		return nil, err
	}

	return &account, nil
}

func (s *accountStore) All(ctx context.Context) ([]*core.Account, error) {
	var accounts []*core.Account
	if err := s.db.View().Find(&accounts).Error; err != nil {
		return nil, err
	}

	return accounts, nil
}

func (s *accountStore) Update(ctx context.Context, tx *db.DB, account *core.Account) error {
	version := account.Version
	account.Version++

	updates := map[string]interface{}{
		"collateral_deposited":   account.CollateralDeposited,
		"amount_borrowed":        account.AmountBorrowed,
		"last_update":            account.LastUpdate,
		"loan_count":             account.LoanCount,
		"encrypted_credit_score": account.EncryptedCreditScore,
		"risk_adjusted_ltv":      account.RiskAdjustedLTV,
		"successful_repayments":  account.SuccessfulRepayments,
		"defaults":               account.Defaults,
		"version":                account.Version,
	}

	update := tx.Update().Model(core.Account{}).
		Where("owner=? and version=?", account.Owner, version).
		Updates(updates)
	if update.Error != nil {
		return update.Error
	}

	if update.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	return nil
}
