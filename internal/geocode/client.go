// Package geocode is the HTTP client for the hosted directions and
// geocoding provider. Routing and geocoding are delegated entirely to
// the provider; this package only builds requests, checks statuses,
// and decodes responses.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"planner.wayfinder.org/internal/models"
)

const (
	// defaultBaseURL is the hosted provider endpoint.
	defaultBaseURL = "https://api.mapbox.com"

	// requestTimeout is the maximum duration for a provider call.
	requestTimeout = 5 * time.Second

	// httpMaxIdleConns is the maximum number of idle (keep-alive)
	// connections kept in the transport pool.
	httpMaxIdleConns = 10

	// httpIdleConnTimeout is how long an idle connection is kept in the
	// pool before being closed.
	httpIdleConnTimeout = 30 * time.Second

	// searchResultLimit caps the number of geocoding candidates requested.
	searchResultLimit = 5
)

// Client calls the provider's driving-directions and forward-geocoding
// endpoints. The zero value is not usable; construct with NewClient.
type Client struct {
	token      string
	country    string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the provider endpoint. Used in tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient shares an existing HTTP client between Clients.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithCountry sets the ISO country filter applied to geocoding queries.
func WithCountry(country string) Option {
	return func(c *Client) {
		c.country = country
	}
}

// NewClient creates a provider client. token must be a valid provider
// access token; it is checked only for non-emptiness at trip creation,
// so a bad token surfaces here as failed requests.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		token:   token,
		baseURL: defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        httpMaxIdleConns,
				MaxIdleConnsPerHost: httpMaxIdleConns,
				IdleConnTimeout:     httpIdleConnTimeout,
			},
		}
	}
	return c
}

type directionsResponse struct {
	Routes []struct {
		Distance float64              `json:"distance"`
		Duration float64              `json:"duration"`
		Geometry models.RouteGeometry `json:"geometry"`
	} `json:"routes"`
	Code string `json:"code"`
}

type geocodingResponse struct {
	Features []struct {
		PlaceName string    `json:"place_name"`
		Center    []float64 `json:"center"`
	} `json:"features"`
}

// Route requests a driving route through the ordered waypoints and
// returns the first candidate. At least two waypoints are required.
func (c *Client) Route(ctx context.Context, waypoints []models.CoordinatePoint) (*models.Route, error) {
	if len(waypoints) < 2 {
		return nil, fmt.Errorf("geocode: directions: need at least 2 waypoints, got %d", len(waypoints))
	}

	requestURL := fmt.Sprintf("%s/directions/v5/mapbox/driving/%s?alternatives=false&geometries=geojson&overview=full&access_token=%s",
		c.baseURL, models.JoinWaypoints(waypoints), url.QueryEscape(c.token))

	body, err := c.get(ctx, requestURL)
	if err != nil {
		return nil, fmt.Errorf("geocode: directions: %w", err)
	}

	var decoded directionsResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("geocode: directions: unmarshal response: %w", err)
	}

	if len(decoded.Routes) == 0 {
		return nil, fmt.Errorf("geocode: directions: no routes returned")
	}

	first := decoded.Routes[0]
	route := models.NewRoute(first.Distance, first.Duration, first.Geometry)
	return &route, nil
}

// Search forward-geocodes a free-text query and returns place
// candidates with display names and coordinates. An empty candidate
// list is not an error.
func (c *Client) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	requestURL := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json?access_token=%s&limit=%d",
		c.baseURL, url.PathEscape(query), url.QueryEscape(c.token), searchResultLimit)
	if c.country != "" {
		requestURL += "&country=" + url.QueryEscape(c.country)
	}

	body, err := c.get(ctx, requestURL)
	if err != nil {
		return nil, fmt.Errorf("geocode: search: %w", err)
	}

	var decoded geocodingResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("geocode: search: unmarshal response: %w", err)
	}

	results := make([]models.SearchResult, 0, len(decoded.Features))
	for _, feature := range decoded.Features {
		if len(feature.Center) != 2 {
			continue
		}
		results = append(results, models.SearchResult{
			Label: feature.PlaceName,
			Lon:   feature.Center[0],
			Lat:   feature.Center[1],
		})
	}
	return results, nil
}

func (c *Client) get(ctx context.Context, requestURL string) ([]byte, error) {
	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	defer resp.Body.Close() // nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
