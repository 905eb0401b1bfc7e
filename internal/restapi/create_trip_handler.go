package restapi

import (
	"encoding/json"
	"net/http"

	"planner.wayfinder.org/internal/models"
	"planner.wayfinder.org/internal/planner"
)

type createTripRequest struct {
	AccessToken     string `json:"accessToken"`
	RequireStopName *bool  `json:"requireStopName"`
	SearchEnabled   *bool  `json:"searchEnabled"`
}

func (api *RestAPI) createTripHandler(w http.ResponseWriter, r *http.Request) {
	var body createTripRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			api.validationErrorResponse(w, r, map[string][]string{
				"body": {"must be valid JSON"},
			})
			return
		}
	}

	trip := api.Planner.CreateTrip(planner.TripOptions{
		AccessToken:     body.AccessToken,
		RequireStopName: body.RequireStopName,
		SearchEnabled:   body.SearchEnabled,
	})

	api.sendResponse(w, r, models.NewEntryResponse(trip.Snapshot()))
}
