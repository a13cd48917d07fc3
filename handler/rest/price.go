package rest

import (
	"arcilend/core"
	"arcilend/handler/render"
	"errors"
	"net/http"
)

func priceHandler(priceStore core.IPriceStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		price, err := priceStore.Latest(ctx)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		if price.ID == 0 {
			render.NotFoundRequest(w, errors.New("no price yet"))
			return
		}

		render.JSON(w, price)
	}
}
