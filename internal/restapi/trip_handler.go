package restapi

import (
	"net/http"

	"planner.wayfinder.org/internal/models"
)

func (api *RestAPI) tripHandler(w http.ResponseWriter, r *http.Request) {
	trip, ok := api.tripFromRequest(w, r)
	if !ok {
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(trip.Snapshot()))
}
