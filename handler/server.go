package handler

import (
	"arcilend/core"
	"arcilend/handler/rest"
	"net/http"
)

// Server server
type Server struct {
	system       *core.System
	poolStore    core.IPoolStore
	accountStore core.IAccountStore
	loanStore    core.ILoanStore
	eventStore   core.IEventStore
	priceStore   core.IPriceStore
	poolz        core.IPoolService
}

// New new server
func New(
	system *core.System,
	poolStore core.IPoolStore,
	accountStore core.IAccountStore,
	loanStore core.ILoanStore,
	eventStore core.IEventStore,
	priceStore core.IPriceStore,
	poolz core.IPoolService) Server {

	return Server{
		system:       system,
		poolStore:    poolStore,
		accountStore: accountStore,
		loanStore:    loanStore,
		eventStore:   eventStore,
		priceStore:   priceStore,
		poolz:        poolz,
	}
}

// HandleRestAPI handle restful apis
func (s Server) HandleRestAPI() http.Handler {
	return rest.Handle(s.poolStore, s.accountStore, s.loanStore, s.eventStore, s.priceStore, s.poolz)
}
