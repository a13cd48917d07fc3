package payee

import (
	"arcilend/core"
	"arcilend/pkg/mtg"
	"context"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/gofrs/uuid"
)

// handle credit score request event. The engine only records the request;
// the credit authority watches the event feed and answers out of band.
func (w *Payee) handleRequestCreditScoreEvent(ctx context.Context, output *core.Output, userID, followID string) error {
	log := logger.FromContext(ctx).WithField("event", "request_credit_score")
	ctx = logger.WithContext(ctx, log)

	account, err := w.accountStore.Find(ctx, userID)
	if err != nil {
		log.WithError(err).Errorln("accounts.Find")
		return err
	}

	if account.ID == 0 {
		log.Infoln("skip: no risk account")
		return w.refund(ctx, output, userID, followID, core.ActionTypeRequestCreditScore, core.ErrAccountNotFound)
	}

	return w.db.Tx(func(tx *db.DB) error {
		event := core.BuildEvent(output.TraceID, core.EventTypeCreditScoreRequested, userID, map[string]interface{}{
			"collateral_deposited":  account.CollateralDeposited,
			"amount_borrowed":       account.AmountBorrowed,
			"successful_repayments": account.SuccessfulRepayments,
			"defaults":              account.Defaults,
		})

		return w.eventStore.Create(ctx, tx, event)
	})
}

// handle credit score update event pushed by the credit authority
func (w *Payee) handleUpdateCreditScoreEvent(ctx context.Context, output *core.Output, userID, followID string, body []byte) error {
	log := logger.FromContext(ctx).WithField("event", "update_credit_score")
	ctx = logger.WithContext(ctx, log)

	var (
		owner  uuid.UUID
		score  mtg.RawMessage
		newLTV uint64
	)
	if _, err := mtg.Scan(body, &owner, &score, &newLTV); err != nil {
		log.WithError(err).Infoln("skip: scan memo failed")
		return w.refund(ctx, output, userID, followID, core.ActionTypeUpdateCreditScore, core.ErrInvalidArgument)
	}

	pool, err := w.requirePool(ctx)
	if err != nil {
		if err == core.ErrPoolNotFound {
			return w.refund(ctx, output, userID, followID, core.ActionTypeUpdateCreditScore, core.ErrPoolNotFound)
		}
		return err
	}

	account, err := w.accountStore.Find(ctx, owner.String())
	if err != nil {
		log.WithError(err).Errorln("accounts.Find")
		return err
	}

	if account.ID == 0 {
		log.Infoln("skip: no risk account for", owner.String())
		return w.refund(ctx, output, userID, followID, core.ActionTypeUpdateCreditScore, core.ErrAccountNotFound)
	}

	if err := w.accountz.UpdateCreditScore(ctx, pool, account, userID, score, newLTV, output.CreatedAt); err != nil {
		code, ok := err.(core.ErrorCode)
		if !ok {
			return err
		}
		log.Infoln("credit score rejected:", code)
		return w.refund(ctx, output, userID, followID, core.ActionTypeUpdateCreditScore, code)
	}

	return w.db.Tx(func(tx *db.DB) error {
		if err := w.accountStore.Update(ctx, tx, account); err != nil {
			log.WithError(err).Errorln("accounts.Update")
			return err
		}

		event := core.BuildEvent(output.TraceID, core.EventTypeCreditScoreUpdated, account.Owner, map[string]interface{}{
			"risk_adjusted_ltv": account.RiskAdjustedLTV,
		})

		return w.eventStore.Create(ctx, tx, event)
	})
}
