package restapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"
	"planner.wayfinder.org/internal/app"
	"planner.wayfinder.org/internal/appconf"
	"planner.wayfinder.org/internal/logging"
	"planner.wayfinder.org/internal/models"
	"planner.wayfinder.org/internal/planner"
	"planner.wayfinder.org/internal/transit"
)

// newFakeProvider serves canned directions and geocoding responses in
// the provider's wire format.
func newFakeProvider(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/directions/v5/mapbox/driving/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"code": "Ok",
			"routes": [{
				"distance": 4321.5,
				"duration": 600.2,
				"geometry": {"type": "LineString", "coordinates": [[10, 20], [12, 22]]}
			}]
		}`))
	})
	mux.HandleFunc("/geocoding/v5/mapbox.places/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.Contains(r.URL.Path, "nowhere") {
			_, _ = w.Write([]byte(`{"features": []}`))
			return
		}
		_, _ = w.Write([]byte(`{
			"features": [
				{"place_name": "Plaza Mayor, Lima", "center": [-77.03, -12.05]},
				{"place_name": "Plaza San Martin, Lima", "center": [-77.035, -12.051]}
			]
		}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// createTestApi creates a RestAPI backed by a fake provider for use in tests.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()
	return createTestApiWithIndex(t, nil)
}

func createTestApiWithIndex(t *testing.T, index *transit.Index) *RestAPI {
	t.Helper()

	provider := newFakeProvider(t)
	logger := logging.NewStructuredLogger(io.Discard, slog.LevelError)

	plannerCfg := planner.Config{
		ProviderBaseURL: provider.URL,
		SearchCountry:   "pe",
		LocalIndex:      index,
		SearchEnabled:   true,
		SearchDebounce:  5 * time.Millisecond,
		MinQueryLength:  3,
	}
	p := planner.New(plannerCfg, logger)
	t.Cleanup(p.Shutdown)

	application := &app.Application{
		Config: appconf.Config{
			Env:     appconf.EnvFlagToEnvironment("test"),
			ApiKeys: []string{"TEST"},
		},
		Logger:  logger,
		Planner: p,
	}

	return NewRestAPI(application)
}

// serveApi sets up a test server with the API's routes registered.
func serveApi(t *testing.T, api *RestAPI) *httptest.Server {
	t.Helper()

	router := httprouter.New()
	api.SetRoutes(router)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func doRequest(t *testing.T, method, url string, body interface{}) (*http.Response, models.ResponseModel) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck

	var model models.ResponseModel
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		// Validation errors use a fieldErrors shape instead of the
		// envelope; decoding stays best-effort for those.
		_ = json.Unmarshal(raw, &model)
	}
	return resp, model
}

// createTestTrip creates a trip through the API and returns its ID.
func createTestTrip(t *testing.T, server *httptest.Server, body interface{}) string {
	t.Helper()

	if body == nil {
		body = map[string]interface{}{"accessToken": "pk.test"}
	}
	resp, model := doRequest(t, http.MethodPost, server.URL+"/api/planner/trips?key=TEST", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entry := entryFromModel(t, model)
	id, ok := entry["id"].(string)
	require.True(t, ok)
	return id
}

// waitForSnapshot polls a trip's snapshot until the condition holds.
func waitForSnapshot(t *testing.T, server *httptest.Server, tripID string, condition func(map[string]interface{}) bool) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		_, model := doRequest(t, http.MethodGet, server.URL+"/api/planner/trips/"+tripID+"?key=TEST", nil)
		if condition(entryFromModel(t, model)) {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func jsonBody(t *testing.T, body interface{}) io.Reader {
	t.Helper()

	encoded, err := json.Marshal(body)
	require.NoError(t, err)
	return bytes.NewReader(encoded)
}

func entryFromModel(t *testing.T, model models.ResponseModel) map[string]interface{} {
	t.Helper()

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok)
	return entry
}

func listFromModel(t *testing.T, model models.ResponseModel) []interface{} {
	t.Helper()

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)
	list, ok := data["list"].([]interface{})
	require.True(t, ok)
	return list
}
