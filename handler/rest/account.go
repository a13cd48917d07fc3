package rest

import (
	"arcilend/core"
	"arcilend/handler/render"
	"arcilend/handler/views"
	"errors"
	"net/http"

	"github.com/go-chi/chi"
)

func accountHandler(accountStore core.IAccountStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		owner := chi.URLParam(r, "owner")
		account, err := accountStore.Find(ctx, owner)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		if account.ID == 0 {
			render.NotFoundRequest(w, errors.New("account not found"))
			return
		}

		view := views.Account{
			Account:                *account,
			RiskAdjustedLTVPercent: views.Percent(account.RiskAdjustedLTV),
		}

		render.JSON(w, view)
	}
}
