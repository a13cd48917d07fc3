package loan

import (
	"arcilend/core"
	"context"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

type loanStore struct {
	db *db.DB
}

// New new loan store
func New(db *db.DB) core.ILoanStore {
	return &loanStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Loan{})
		if err := tx.AutoMigrate(core.Loan{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *loanStore) Save(ctx context.Context, tx *db.DB, loan *core.Loan) error {
	return tx.Update().Where("borrower=?", loan.Borrower).FirstOrCreate(loan).Error
}

func (s *loanStore) Find(ctx context.Context, borrower string) (*core.Loan, error) {
	var loan core.Loan
	if err := s.db.View().Where("borrower=?", borrower).First(&loan).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return &core.Loan{}, nil
		}
		return nil, err
	}

	return &loan, nil
}

func (s *loanStore) AllActive(ctx context.Context) ([]*core.Loan, error) {
	var loans []*core.Loan
	if err := s.db.View().
		Where("is_liquidated=? and borrowed_amount>0", false).
		Find(&loans).Error; err != nil {
		return nil, err
	}

	return loans, nil
}

func (s *loanStore) Update(ctx context.Context, tx *db.DB, loan *core.Loan) error {
	version := loan.Version
	loan.Version++

	updates := map[string]interface{}{
		"collateral_amount": loan.CollateralAmount,
		"borrowed_amount":   loan.BorrowedAmount,
		"interest_rate":     loan.InterestRate,
		"start_time":        loan.StartTime,
		"last_accrual":      loan.LastAccrual,
		"accrued_interest":  loan.AccruedInterest,
		"is_liquidated":     loan.IsLiquidated,
		"version":           loan.Version,
	}

	update := tx.Update().Model(core.Loan{}).
		Where("borrower=? and version=?", loan.Borrower, version).
		Updates(updates)
	if update.Error != nil {
		return update.Error
	}

	if update.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	return nil
}
