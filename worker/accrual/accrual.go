package accrual

import (
	"arcilend/core"
	"arcilend/worker"
	"context"
	"time"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/robfig/cron/v3"
)

// Accrualer walks the active loans on a schedule and rolls their
// interest clocks forward.
type Accrualer struct {
	worker.BaseJob
	db        *db.DB
	loanStore core.ILoanStore
	loanz     core.ILoanService
}

// New new accrual worker
func New(location string, db *db.DB, loanStore core.ILoanStore, loanz core.ILoanService) *Accrualer {
	accrualer := Accrualer{
		db:        db,
		loanStore: loanStore,
		loanz:     loanz,
	}

	l, _ := time.LoadLocation(location)
	accrualer.Cron = cron.New(cron.WithLocation(l))
	spec := "@every 1m"
	accrualer.Cron.AddFunc(spec, accrualer.Run)
	accrualer.OnWork = func() error {
		return accrualer.onWork(context.Background())
	}

	return &accrualer
}

func (w *Accrualer) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "accrual")

	loans, err := w.loanStore.AllActive(ctx)
	if err != nil {
		log.WithError(err).Error("loans.AllActive")
		return err
	}

	now := time.Now()
	for _, loan := range loans {
		before := loan.LastAccrual
		w.loanz.AccrueInterest(ctx, loan, now)
		if loan.LastAccrual == before {
			continue
		}

		loan := loan
		if err := w.db.Tx(func(tx *db.DB) error {
			return w.loanStore.Update(ctx, tx, loan)
		}); err != nil {
			log.WithError(err).Error("loans.Update:", loan.Borrower)
			return err
		}
	}

	return nil
}
