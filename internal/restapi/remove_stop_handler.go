package restapi

import (
	"net/http"

	"planner.wayfinder.org/internal/models"
	"planner.wayfinder.org/internal/utils"
)

func (api *RestAPI) removeStopHandler(w http.ResponseWriter, r *http.Request) {
	trip, ok := api.tripFromRequest(w, r)
	if !ok {
		return
	}

	stopID := utils.ExtractParam(r, "stopId")
	if err := utils.ValidateID(stopID); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"stopId": {err.Error()},
		})
		return
	}

	if err := trip.RemoveStop(r.Context(), stopID); err != nil {
		api.plannerErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(trip.Snapshot()))
}
