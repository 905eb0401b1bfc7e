package restapi

import (
	"net/http"

	"planner.wayfinder.org/internal/models"
)

func (api *RestAPI) routeHandler(w http.ResponseWriter, r *http.Request) {
	trip, ok := api.tripFromRequest(w, r)
	if !ok {
		return
	}

	route := trip.Route()
	if route == nil {
		api.sendNotFound(w, r)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(route))
}
