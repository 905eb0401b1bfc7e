package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodPost, "/api/planner/trips", validateAPIKey(api, api.createTripHandler))
	router.Handler(http.MethodGet, "/api/planner/trips/:id", validateAPIKey(api, api.tripHandler))
	router.Handler(http.MethodPost, "/api/planner/trips/:id/stops", validateAPIKey(api, api.addStopHandler))
	router.Handler(http.MethodDelete, "/api/planner/trips/:id/stops/:stopId", validateAPIKey(api, api.removeStopHandler))
	router.Handler(http.MethodPost, "/api/planner/trips/:id/suggest", validateAPIKey(api, api.suggestStopHandler))
	router.Handler(http.MethodGet, "/api/planner/trips/:id/route", validateAPIKey(api, api.routeHandler))
	router.Handler(http.MethodGet, "/api/planner/trips/:id/search", validateAPIKey(api, api.searchHandler))
	router.Handler(http.MethodPost, "/api/planner/trips/:id/select", validateAPIKey(api, api.selectResultHandler))
	router.Handler(http.MethodPost, "/api/planner/trips/:id/query", validateAPIKey(api, api.typeQueryHandler))
	router.Handler(http.MethodPost, "/api/planner/trips/:id/pending-name", validateAPIKey(api, api.pendingNameHandler))
	router.Handler(http.MethodGet, "/api/planner/nearby", validateAPIKey(api, api.nearbyHandler))
	router.Handler(http.MethodGet, "/api/planner/current-time.json", validateAPIKey(api, api.currentTimeHandler))
}
