package restapi

import (
	"net/http"
	"time"

	"planner.wayfinder.org/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter func(http.Handler) http.Handler
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second),
	}
}

// WithMiddleware wraps a handler with the API's middleware stack:
// security headers, request logging, and per-key rate limiting.
func (api *RestAPI) WithMiddleware(handler http.Handler) http.Handler {
	return securityHeaders(NewRequestLoggingMiddleware(api.Logger)(api.rateLimiter(handler)))
}
