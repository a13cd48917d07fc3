package payee

import (
	"arcilend/core"
	"arcilend/pkg/mtg"
	"context"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
)

// handle borrow event
func (w *Payee) handleBorrowEvent(ctx context.Context, output *core.Output, userID, followID string, body []byte) error {
	log := logger.FromContext(ctx).WithField("event", "borrow")
	ctx = logger.WithContext(ctx, log)

	var amount uint64
	if _, err := mtg.Scan(body, &amount); err != nil || amount == 0 {
		log.Infoln("skip: invalid borrow amount")
		return w.refund(ctx, output, userID, followID, core.ActionTypeBorrow, core.ErrInvalidArgument)
	}

	pool, err := w.requirePool(ctx)
	if err != nil {
		if err == core.ErrPoolNotFound {
			return w.refund(ctx, output, userID, followID, core.ActionTypeBorrow, core.ErrPoolNotFound)
		}
		return err
	}

	account, err := w.accountStore.Find(ctx, userID)
	if err != nil {
		log.WithError(err).Errorln("accounts.Find")
		return err
	}

	if account.ID == 0 {
		log.Infoln("skip: no collateral deposited yet")
		return w.refund(ctx, output, userID, followID, core.ActionTypeBorrow, core.ErrAccountNotFound)
	}

	loan, err := w.loanStore.Find(ctx, userID)
	if err != nil {
		log.WithError(err).Errorln("loans.Find")
		return err
	}

	created := loan.ID == 0
	if err := w.loanz.Open(ctx, pool, account, loan, amount, output.CreatedAt); err != nil {
		code, ok := err.(core.ErrorCode)
		if !ok {
			return err
		}
		log.Infoln("borrow rejected:", code)
		return w.refund(ctx, output, userID, followID, core.ActionTypeBorrow, code)
	}

	log.Infoln("borrow:", amount, "rate:", loan.InterestRate)

	return w.db.Tx(func(tx *db.DB) error {
		if created {
			if err := w.loanStore.Save(ctx, tx, loan); err != nil {
				log.WithError(err).Errorln("loans.Save")
				return err
			}
		} else {
			if err := w.loanStore.Update(ctx, tx, loan); err != nil {
				log.WithError(err).Errorln("loans.Update")
				return err
			}
		}

		if err := w.accountStore.Update(ctx, tx, account); err != nil {
			log.WithError(err).Errorln("accounts.Update")
			return err
		}

		if err := w.poolStore.Update(ctx, tx, pool); err != nil {
			log.WithError(err).Errorln("pools.Update")
			return err
		}

		event := core.BuildEvent(output.TraceID, core.EventTypeBorrow, userID, map[string]interface{}{
			"amount":           amount,
			"interest_rate":    loan.InterestRate,
			"borrowed_amount":  loan.BorrowedAmount,
			"amount_borrowed":  account.AmountBorrowed,
			"total_borrowed":   pool.TotalBorrowed,
			"utilization_rate": pool.UtilizationRate,
		})
		if err := w.eventStore.Create(ctx, tx, event); err != nil {
			return err
		}

		// pay out the borrowed funds
		action := core.TransferAction{
			Source:   core.ActionTypeBorrowTransfer,
			FollowID: followID,
		}
		return w.transferOut(ctx, tx, userID, followID, output.TraceID, amount, &action)
	})
}
