package payee

import (
	"arcilend/core"
	"arcilend/pkg/mtg"
	"context"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/gofrs/uuid"
)

// handle liquidate event. The liquidator names the borrower in the memo
// and covers the debt with the output value; collateral plus the bonus
// go out to the liquidator, any excess payment goes back.
func (w *Payee) handleLiquidateEvent(ctx context.Context, output *core.Output, userID, followID string, body []byte) error {
	log := logger.FromContext(ctx).WithField("event", "liquidate")
	ctx = logger.WithContext(ctx, log)

	var borrower uuid.UUID
	if _, err := mtg.Scan(body, &borrower); err != nil {
		log.WithError(err).Infoln("skip: scan memo failed")
		return w.refund(ctx, output, userID, followID, core.ActionTypeLiquidate, core.ErrInvalidArgument)
	}

	pool, err := w.requirePool(ctx)
	if err != nil {
		if err == core.ErrPoolNotFound {
			return w.refund(ctx, output, userID, followID, core.ActionTypeLiquidate, core.ErrPoolNotFound)
		}
		return err
	}

	account, err := w.accountStore.Find(ctx, borrower.String())
	if err != nil {
		log.WithError(err).Errorln("accounts.Find")
		return err
	}

	loan, err := w.loanStore.Find(ctx, borrower.String())
	if err != nil {
		log.WithError(err).Errorln("loans.Find")
		return err
	}

	if account.ID == 0 || loan.ID == 0 {
		log.Infoln("skip: no loan for", borrower.String())
		return w.refund(ctx, output, userID, followID, core.ActionTypeLiquidate, core.ErrLoanNotFound)
	}

	price, err := w.priceStore.Latest(ctx)
	if err != nil {
		log.WithError(err).Errorln("prices.Latest")
		return err
	}

	outcome, err := w.loanz.Liquidate(ctx, pool, account, loan, output.Amount, price.Price, output.CreatedAt)
	if err != nil {
		code, ok := err.(core.ErrorCode)
		if !ok {
			return err
		}
		log.Infoln("liquidation rejected:", code)
		return w.refund(ctx, output, userID, followID, core.ActionTypeLiquidate, code)
	}

	log.Infoln("liquidated", borrower.String(), "debt:", outcome.DebtRepaid, "seized:", outcome.CollateralSeized)

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

		event := core.BuildEvent(output.TraceID, core.EventTypeLiquidation, borrower.String(), map[string]interface{}{
			"liquidator":        userID,
			"debt_repaid":       outcome.DebtRepaid,
			"collateral_seized": outcome.CollateralSeized,
			"bonus":             outcome.Bonus,
			"defaults":          account.Defaults,
		})
		if err := w.eventStore.Create(ctx, tx, event); err != nil {
			return err
		}

		seize := core.TransferAction{
			Source:   core.ActionTypeSeizeTransfer,
			FollowID: followID,
		}
		if err := w.transferOut(ctx, tx, userID, followID, output.TraceID, outcome.CollateralSeized+outcome.Bonus, &seize); err != nil {
			return err
		}

		if outcome.Refund > 0 {
			change := core.TransferAction{
				Source:   core.ActionTypeRefundTransfer,
				FollowID: followID,
			}
			return w.transferOut(ctx, tx, userID, followID, output.TraceID, outcome.Refund, &change)
		}

		return nil
	})
}
