package restapi

import (
	"encoding/json"
	"net/http"

	"planner.wayfinder.org/internal/models"
	"planner.wayfinder.org/internal/utils"
)

type pendingNameRequest struct {
	Name string `json:"name"`
}

// pendingNameHandler sets the name the trip's next placed or selected
// stop will take.
func (api *RestAPI) pendingNameHandler(w http.ResponseWriter, r *http.Request) {
	trip, ok := api.tripFromRequest(w, r)
	if !ok {
		return
	}

	var body pendingNameRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"body": {"must be valid JSON"},
		})
		return
	}

	if err := utils.ValidateStopName(body.Name); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"name": {err.Error()},
		})
		return
	}

	trip.SetPendingName(utils.SanitizeInput(body.Name))

	api.sendResponse(w, r, models.NewEntryResponse(trip.Snapshot()))
}
