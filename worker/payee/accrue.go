package payee

import (
	"arcilend/core"
	"arcilend/pkg/mtg"
	"context"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/gofrs/uuid"
)

// handle accrue event: anyone may poke a loan forward to the output's
// timestamp. The cron worker does the same thing on a schedule.
func (w *Payee) handleAccrueEvent(ctx context.Context, output *core.Output, userID, followID string, body []byte) error {
	log := logger.FromContext(ctx).WithField("event", "accrue")
	ctx = logger.WithContext(ctx, log)

	var borrower uuid.UUID
	if _, err := mtg.Scan(body, &borrower); err != nil {
		log.WithError(err).Infoln("skip: scan memo failed")
		return w.refund(ctx, output, userID, followID, core.ActionTypeAccrue, core.ErrInvalidArgument)
	}

	loan, err := w.loanStore.Find(ctx, borrower.String())
	if err != nil {
		log.WithError(err).Errorln("loans.Find")
		return err
	}

	if loan.ID == 0 {
		log.Infoln("skip: no loan for", borrower.String())
		return w.refund(ctx, output, userID, followID, core.ActionTypeAccrue, core.ErrLoanNotFound)
	}

	w.loanz.AccrueInterest(ctx, loan, output.CreatedAt)

	return w.db.Tx(func(tx *db.DB) error {
		return w.loanStore.Update(ctx, tx, loan)
	})
}
