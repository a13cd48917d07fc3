package rest

import (
	"arcilend/core"
	"arcilend/handler/render"
	"net/http"
	"strconv"
)

const maxEventPage = 200

func eventsHandler(eventStore core.IEventStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		fromID, _ := strconv.ParseUint(r.URL.Query().Get("from"), 10, 64)
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		if limit <= 0 || limit > maxEventPage {
			limit = maxEventPage
		}

		events, err := eventStore.ListAfter(ctx, fromID, limit)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, events)
	}
}
