package payee

import (
	"arcilend/core"
	"arcilend/pkg/mtg"
	"context"
	"time"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
)

// handle push price event; only the registered oracle may post
func (w *Payee) handlePushPriceEvent(ctx context.Context, output *core.Output, userID, followID string, body []byte) error {
	log := logger.FromContext(ctx).WithField("event", "push_price")
	ctx = logger.WithContext(ctx, log)

	pool, err := w.requirePool(ctx)
	if err != nil {
		if err == core.ErrPoolNotFound {
			return w.refund(ctx, output, userID, followID, core.ActionTypePushPrice, core.ErrPoolNotFound)
		}
		return err
	}

	if userID != pool.OracleID {
		log.Infoln("skip: price from non-oracle", userID)
		return w.refund(ctx, output, userID, followID, core.ActionTypePushPrice, core.ErrOperationForbidden)
	}

	var value uint64
	if _, err := mtg.Scan(body, &value); err != nil || value == 0 {
		log.WithError(err).Infoln("skip: invalid price")
		return w.refund(ctx, output, userID, followID, core.ActionTypePushPrice, core.ErrInvalidArgument)
	}

	price := core.Price{
		Price:     value,
		Source:    userID,
		UpdatedAt: time.Now(),
	}

	return w.db.Tx(func(tx *db.DB) error {
		return w.priceStore.Save(ctx, tx, &price)
	})
}
