package payee

import (
	"arcilend/core"
	"context"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
)

// handle deposit event
func (w *Payee) handleDepositEvent(ctx context.Context, output *core.Output, userID, followID string) error {
	log := logger.FromContext(ctx).WithField("event", "deposit")
	ctx = logger.WithContext(ctx, log)

	if output.Amount == 0 {
		log.Infoln("skip: zero deposit")
		return nil
	}

	pool, err := w.requirePool(ctx)
	if err != nil {
		if err == core.ErrPoolNotFound {
			return w.refund(ctx, output, userID, followID, core.ActionTypeDeposit, core.ErrPoolNotFound)
		}
		return err
	}

	account, err := w.accountStore.Find(ctx, userID)
	if err != nil {
		log.WithError(err).Errorln("accounts.Find")
		return err
	}

	created := account.ID == 0
	w.accountz.EnsureInitialized(ctx, account, userID, output.CreatedAt)
	w.accountz.Deposit(ctx, pool, account, output.Amount, output.CreatedAt)

	return w.db.Tx(func(tx *db.DB) error {
		if created {
			if err := w.accountStore.Save(ctx, tx, account); err != nil {
				log.WithError(err).Errorln("accounts.Save")
				return err
			}
		} else {
			if err := w.accountStore.Update(ctx, tx, account); err != nil {
				log.WithError(err).Errorln("accounts.Update")
				return err
			}
		}

		if err := w.poolStore.Update(ctx, tx, pool); err != nil {
			log.WithError(err).Errorln("pools.Update")
			return err
		}

		event := core.BuildEvent(output.TraceID, core.EventTypeDeposit, userID, map[string]interface{}{
			"amount":               output.Amount,
			"collateral_deposited": account.CollateralDeposited,
			"total_deposits":       pool.TotalDeposits,
			"utilization_rate":     pool.UtilizationRate,
		})

		return w.eventStore.Create(ctx, tx, event)
	})
}
