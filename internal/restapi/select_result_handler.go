package restapi

import (
	"encoding/json"
	"net/http"

	"planner.wayfinder.org/internal/models"
)

type selectResultRequest struct {
	Index int `json:"index"`
}

func (api *RestAPI) selectResultHandler(w http.ResponseWriter, r *http.Request) {
	trip, ok := api.tripFromRequest(w, r)
	if !ok {
		return
	}

	var body selectResultRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"body": {"must be valid JSON"},
		})
		return
	}

	stop, err := trip.SelectResult(r.Context(), body.Index)
	if err != nil {
		api.plannerErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(stop))
}
