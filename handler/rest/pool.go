package rest

import (
	"arcilend/core"
	"arcilend/handler/render"
	"arcilend/handler/views"
	"errors"
	"net/http"
)

func poolHandler(poolStore core.IPoolStore, poolz core.IPoolService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		pool, err := poolStore.Find(ctx)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		if pool.ID == 0 {
			render.NotFoundRequest(w, errors.New("pool not initialized"))
			return
		}

		view := views.Pool{
			Pool:               *pool,
			InterestPercent:    views.Percent(pool.InterestRate),
			UtilizationPercent: views.Percent(pool.UtilizationRate),
			CurrentRatePercent: views.Percent(poolz.CurrentInterestRate(ctx, pool)),
			CollateralFactor:   views.Factor(pool.CollateralRatio),
			LiquidationFactor:  views.Factor(pool.LiquidationThreshold),
		}

		render.JSON(w, view)
	}
}
