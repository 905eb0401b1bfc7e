package restapi

import (
	"net/http"

	"planner.wayfinder.org/internal/models"
	"planner.wayfinder.org/internal/utils"
)

func (api *RestAPI) searchHandler(w http.ResponseWriter, r *http.Request) {
	trip, ok := api.tripFromRequest(w, r)
	if !ok {
		return
	}

	query, err := utils.ValidateAndSanitizeQuery(r.URL.Query().Get("query"))
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"query": {err.Error()},
		})
		return
	}

	results, err := trip.Search(r.Context(), query)
	if err != nil {
		api.plannerErrorResponse(w, r, err)
		return
	}
	if results == nil {
		results = []models.SearchResult{}
	}

	api.sendResponse(w, r, models.NewListResponse(results))
}
