package rest

import (
	"arcilend/core"
	"arcilend/handler/render"
	"errors"
	"net/http"

	"github.com/go-chi/chi"
)

// Handle handle rest api request
func Handle(
	poolStore core.IPoolStore,
	accountStore core.IAccountStore,
	loanStore core.ILoanStore,
	eventStore core.IEventStore,
	priceStore core.IPriceStore,
	poolz core.IPoolService) http.Handler {

	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Get("/pool", poolHandler(poolStore, poolz))
	router.Get("/accounts/{owner}", accountHandler(accountStore))
	router.Get("/loans", allLoansHandler(loanStore))
	router.Get("/loans/{borrower}", loanHandler(loanStore))
	router.Get("/events", eventsHandler(eventStore))
	router.Get("/price", priceHandler(priceStore))

	return router
}
