package restapi

import (
	"net/http"

	"planner.wayfinder.org/internal/models"
)

func (api *RestAPI) suggestStopHandler(w http.ResponseWriter, r *http.Request) {
	trip, ok := api.tripFromRequest(w, r)
	if !ok {
		return
	}

	stop, err := trip.SuggestStop(r.Context())
	if err != nil {
		api.plannerErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(stop))
}
