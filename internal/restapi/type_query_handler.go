package restapi

import (
	"encoding/json"
	"net/http"

	"planner.wayfinder.org/internal/models"
	"planner.wayfinder.org/internal/utils"
)

type typeQueryRequest struct {
	Query string `json:"query"`
}

// typeQueryHandler records a keystroke in the trip's search box. The
// query is dispatched to the geocoder only after the debounce delay
// elapses without further keystrokes; results appear in subsequent
// trip snapshots.
func (api *RestAPI) typeQueryHandler(w http.ResponseWriter, r *http.Request) {
	trip, ok := api.tripFromRequest(w, r)
	if !ok {
		return
	}

	var body typeQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"body": {"must be valid JSON"},
		})
		return
	}

	query, err := utils.ValidateAndSanitizeQuery(body.Query)
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"query": {err.Error()},
		})
		return
	}

	if err := trip.TypeQuery(query); err != nil {
		api.plannerErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(trip.Snapshot()))
}
