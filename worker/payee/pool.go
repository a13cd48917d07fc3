package payee

import (
	"arcilend/core"
	"arcilend/pkg/mtg"
	"context"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/gofrs/uuid"
)

// handle init pool event
func (w *Payee) handleInitPoolEvent(ctx context.Context, output *core.Output, userID, followID string, body []byte) error {
	log := logger.FromContext(ctx).WithField("event", "init_pool")
	ctx = logger.WithContext(ctx, log)

	if !w.system.IsAdmin(userID) {
		log.Infoln("skip: not an admin")
		return w.refund(ctx, output, userID, followID, core.ActionTypeInitPool, core.ErrOperationForbidden)
	}

	var (
		interestRate         uint64
		collateralRatio      uint64
		liquidationThreshold uint64
		creditAuthority      uuid.UUID
		oracle               uuid.UUID
	)
	if _, err := mtg.Scan(body, &interestRate, &collateralRatio, &liquidationThreshold, &creditAuthority, &oracle); err != nil {
		log.WithError(err).Infoln("skip: scan memo failed")
		return w.refund(ctx, output, userID, followID, core.ActionTypeInitPool, core.ErrInvalidArgument)
	}

	pool, err := w.poolStore.Find(ctx)
	if err != nil {
		log.WithError(err).Errorln("pools.Find")
		return err
	}

	if pool.ID > 0 {
		log.Infoln("skip: pool already initialized")
		return w.refund(ctx, output, userID, followID, core.ActionTypeInitPool, core.ErrPoolExists)
	}

	if err := w.poolz.Initialize(ctx, pool, userID, interestRate, collateralRatio, liquidationThreshold, creditAuthority.String(), oracle.String()); err != nil {
		code, ok := err.(core.ErrorCode)
		if !ok {
			return err
		}
		log.Infoln("pool config rejected:", code)
		return w.refund(ctx, output, userID, followID, core.ActionTypeInitPool, code)
	}

	return w.db.Tx(func(tx *db.DB) error {
		if err := w.poolStore.Save(ctx, tx, pool); err != nil {
			log.WithError(err).Errorln("pools.Save")
			return err
		}

		event := core.BuildEvent(output.TraceID, core.EventTypePoolInitialized, userID, map[string]interface{}{
			"interest_rate":         pool.InterestRate,
			"collateral_ratio":      pool.CollateralRatio,
			"liquidation_threshold": pool.LiquidationThreshold,
			"credit_authority_id":   pool.CreditAuthorityID,
			"oracle_id":             pool.OracleID,
		})

		return w.eventStore.Create(ctx, tx, event)
	})
}
