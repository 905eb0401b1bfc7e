package restapi

import (
	"net/http"

	"planner.wayfinder.org/internal/models"
	"planner.wayfinder.org/internal/utils"
)

const defaultNearbyLimit = 10

// nearbyHandler lists places from the offline transit index around a
// point. Available only when the server was started with a static GTFS
// feed.
func (api *RestAPI) nearbyHandler(w http.ResponseWriter, r *http.Request) {
	index := api.Planner.LocalIndex()
	if index == nil {
		api.sendNotFound(w, r)
		return
	}

	queryParams := r.URL.Query()
	lat, fieldErrors := utils.ParseFloatParam(queryParams, "lat", nil)
	lon, _ := utils.ParseFloatParam(queryParams, "lon", fieldErrors)
	radius, _ := utils.ParseFloatParam(queryParams, "radius", fieldErrors)
	limit, _ := utils.ParseIntParam(queryParams, "limit", fieldErrors)

	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	locationErrors := utils.ValidateCoordinateParams(lat, lon)
	if radius != 0 {
		if err := utils.ValidateRadius(radius); err != nil {
			locationErrors["radius"] = append(locationErrors["radius"], err.Error())
		}
	}
	if len(locationErrors) > 0 {
		api.validationErrorResponse(w, r, locationErrors)
		return
	}

	if limit <= 0 {
		limit = defaultNearbyLimit
	}

	places := index.Nearby(lat, lon, radius, limit)

	results := make([]models.SearchResult, 0, len(places))
	for _, place := range places {
		results = append(results, models.SearchResult{
			Label: place.Name,
			Lat:   place.Lat,
			Lon:   place.Lon,
		})
	}

	api.sendResponse(w, r, models.NewListResponse(results))
}
