package restapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"planner.wayfinder.org/internal/models"
	"planner.wayfinder.org/internal/planner"
)

// invalidAPIKeyResponse sends a 401 Unauthorized response with the
// required format for invalid API key errors
func (api *RestAPI) invalidAPIKeyResponse(w http.ResponseWriter, r *http.Request) {
	response := models.ResponseModel{
		Code:        http.StatusUnauthorized,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        "permission denied",
		Version:     1,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.Logger.Error("failed to encode invalid API key response", "error", err)
	}
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.Logger.Error("internal server error", "error", err, "path", r.URL.Path)

	response := models.ResponseModel{
		Code:        http.StatusInternalServerError,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        "internal server error",
		Version:     1,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	encoderErr := json.NewEncoder(w).Encode(response)
	if encoderErr != nil {
		api.Logger.Error("failed to encode server error response", "error", encoderErr)
	}
}

// validationErrorResponse sends a 400 Bad Request response with field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		FieldErrors: fieldErrors,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.Logger.Error("failed to encode validation error response", "error", err)
	}
}

// plannerErrorResponse maps planner sentinel errors onto the API's
// error responses. Precondition failures become field errors; unknown
// errors become a 500.
func (api *RestAPI) plannerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, planner.ErrTripNotFound), errors.Is(err, planner.ErrStopNotFound):
		api.sendNotFound(w, r)
	case errors.Is(err, planner.ErrStopNameRequired):
		api.validationErrorResponse(w, r, map[string][]string{
			"name": {"stop name required"},
		})
	case errors.Is(err, planner.ErrNotEnoughStops):
		api.validationErrorResponse(w, r, map[string][]string{
			"stops": {"at least two stops required"},
		})
	case errors.Is(err, planner.ErrSearchDisabled), errors.Is(err, planner.ErrSearchUnavailable):
		api.validationErrorResponse(w, r, map[string][]string{
			"search": {err.Error()},
		})
	case errors.Is(err, planner.ErrInvalidSelection):
		api.validationErrorResponse(w, r, map[string][]string{
			"index": {"no search result at that index"},
		})
	default:
		api.serverErrorResponse(w, r, err)
	}
}
