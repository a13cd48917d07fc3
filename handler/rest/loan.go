package rest

import (
	"arcilend/core"
	"arcilend/handler/render"
	"arcilend/handler/views"
	"errors"
	"net/http"

	"github.com/go-chi/chi"
)

func allLoansHandler(loanStore core.ILoanStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		loans, err := loanStore.AllActive(ctx)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		loanViews := make([]*views.Loan, 0, len(loans))
		for _, loan := range loans {
			loanViews = append(loanViews, loanView(loan))
		}

		render.JSON(w, loanViews)
	}
}

func loanHandler(loanStore core.ILoanStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		borrower := chi.URLParam(r, "borrower")
		loan, err := loanStore.Find(ctx, borrower)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		if loan.ID == 0 {
			render.NotFoundRequest(w, errors.New("loan not found"))
			return
		}

		render.JSON(w, loanView(loan))
	}
}

func loanView(loan *core.Loan) *views.Loan {
	return &views.Loan{
		Loan:        *loan,
		TotalOwed:   loan.TotalOwed(),
		RatePercent: views.Percent(loan.InterestRate),
	}
}
