package restapi

import (
	"encoding/json"
	"net/http"

	"planner.wayfinder.org/internal/models"
	"planner.wayfinder.org/internal/utils"
)

type addStopRequest struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

func (api *RestAPI) addStopHandler(w http.ResponseWriter, r *http.Request) {
	trip, ok := api.tripFromRequest(w, r)
	if !ok {
		return
	}

	var body addStopRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"body": {"must be valid JSON"},
		})
		return
	}

	fieldErrors := utils.ValidateCoordinateParams(body.Lat, body.Lon)
	if err := utils.ValidateStopName(body.Name); err != nil {
		fieldErrors["name"] = append(fieldErrors["name"], err.Error())
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	stop, err := trip.AddStop(r.Context(), body.Name, body.Lat, body.Lon)
	if err != nil {
		api.plannerErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(stop))
}
