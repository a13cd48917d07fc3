package payee

import (
	"arcilend/core"
	"arcilend/pkg/mtg"
	"context"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
)

// handle withdraw event
func (w *Payee) handleWithdrawEvent(ctx context.Context, output *core.Output, userID, followID string, body []byte) error {
	log := logger.FromContext(ctx).WithField("event", "withdraw")
	ctx = logger.WithContext(ctx, log)

	var amount uint64
	if _, err := mtg.Scan(body, &amount); err != nil || amount == 0 {
		log.Infoln("skip: invalid withdraw amount")
		return w.refund(ctx, output, userID, followID, core.ActionTypeWithdraw, core.ErrInvalidArgument)
	}

	pool, err := w.requirePool(ctx)
	if err != nil {
		if err == core.ErrPoolNotFound {
			return w.refund(ctx, output, userID, followID, core.ActionTypeWithdraw, core.ErrPoolNotFound)
		}
		return err
	}

	account, err := w.accountStore.Find(ctx, userID)
	if err != nil {
		log.WithError(err).Errorln("accounts.Find")
		return err
	}

	if account.ID == 0 {
		log.Infoln("skip: no risk account")
		return w.refund(ctx, output, userID, followID, core.ActionTypeWithdraw, core.ErrAccountNotFound)
	}

	if err := w.accountz.Withdraw(ctx, pool, account, amount, output.CreatedAt); err != nil {
		code, ok := err.(core.ErrorCode)
		if !ok {
			return err
		}
		log.Infoln("withdraw rejected:", code)
		return w.refund(ctx, output, userID, followID, core.ActionTypeWithdraw, code)
	}

	return w.db.Tx(func(tx *db.DB) error {
		if err := w.accountStore.Update(ctx, tx, account); err != nil {
			log.WithError(err).Errorln("accounts.Update")
			return err
		}

		if err := w.poolStore.Update(ctx, tx, pool); err != nil {
			log.WithError(err).Errorln("pools.Update")
			return err
		}

		event := core.BuildEvent(output.TraceID, core.EventTypeWithdraw, userID, map[string]interface{}{
			"amount":               amount,
			"collateral_deposited": account.CollateralDeposited,
			"total_deposits":       pool.TotalDeposits,
			"utilization_rate":     pool.UtilizationRate,
		})
		if err := w.eventStore.Create(ctx, tx, event); err != nil {
			return err
		}

		action := core.TransferAction{
			Source:   core.ActionTypeWithdrawTransfer,
			FollowID: followID,
		}
		return w.transferOut(ctx, tx, userID, followID, output.TraceID, amount, &action)
	})
}
