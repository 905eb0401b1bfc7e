package restapi

import (
	"net/http"

	"planner.wayfinder.org/internal/planner"
	"planner.wayfinder.org/internal/utils"
)

// tripFromRequest resolves the :id path parameter to a trip session.
// It writes the error response itself when resolution fails.
func (api *RestAPI) tripFromRequest(w http.ResponseWriter, r *http.Request) (*planner.Trip, bool) {
	tripID := utils.ExtractParam(r, "id")

	if err := utils.ValidateID(tripID); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"id": {err.Error()},
		})
		return nil, false
	}

	trip, err := api.Planner.Trip(tripID)
	if err != nil {
		api.sendNotFound(w, r)
		return nil, false
	}
	return trip, true
}
