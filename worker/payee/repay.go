package payee

import (
	"arcilend/core"
	"context"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
)

// handle repay event. The payment rides on the output itself; anything
// above the total owed flows back to the borrower.
func (w *Payee) handleRepayEvent(ctx context.Context, output *core.Output, userID, followID string) error {
	log := logger.FromContext(ctx).WithField("event", "repay")
	ctx = logger.WithContext(ctx, log)

	pool, err := w.requirePool(ctx)
	if err != nil {
		if err == core.ErrPoolNotFound {
			return w.refund(ctx, output, userID, followID, core.ActionTypeRepay, core.ErrPoolNotFound)
		}
		return err
	}

	account, err := w.accountStore.Find(ctx, userID)
	if err != nil {
		log.WithError(err).Errorln("accounts.Find")
		return err
	}

	loan, err := w.loanStore.Find(ctx, userID)
	if err != nil {
		log.WithError(err).Errorln("loans.Find")
		return err
	}

	if account.ID == 0 || loan.ID == 0 {
		log.Infoln("skip: no loan to repay")
		return w.refund(ctx, output, userID, followID, core.ActionTypeRepay, core.ErrLoanNotFound)
	}

	refund, err := w.loanz.Repay(ctx, pool, account, loan, output.Amount, output.CreatedAt)
	if err != nil {
		code, ok := err.(core.ErrorCode)
		if !ok {
			return err
		}
		log.Infoln("repay rejected:", code)
		return w.refund(ctx, output, userID, followID, core.ActionTypeRepay, code)
	}

	return w.db.Tx(func(tx *db.DB) error {
		if err := w.loanStore.Update(ctx, tx, loan); err != nil {
			log.WithError(err).Errorln("loans.Update")
			return err
		}

		if err := w.accountStore.Update(ctx, tx, account); err != nil {
			log.WithError(err).Errorln("accounts.Update")
			return err
		}

		if err := w.poolStore.Update(ctx, tx, pool); err != nil {
			log.WithError(err).Errorln("pools.Update")
			return err
		}

		event := core.BuildEvent(output.TraceID, core.EventTypeRepay, userID, map[string]interface{}{
			"amount":                output.Amount - refund,
			"borrowed_amount":       loan.BorrowedAmount,
			"accrued_interest":      loan.AccruedInterest,
			"total_borrowed":        pool.TotalBorrowed,
			"successful_repayments": account.SuccessfulRepayments,
		})
		if err := w.eventStore.Create(ctx, tx, event); err != nil {
			return err
		}

		if refund > 0 {
			action := core.TransferAction{
				Source:   core.ActionTypeRepayRefundTransfer,
				FollowID: followID,
			}
			return w.transferOut(ctx, tx, userID, followID, output.TraceID, refund, &action)
		}

		return nil
	})
}
