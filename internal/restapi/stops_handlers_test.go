package restapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addTestStop(t *testing.T, server *httptest.Server, tripID, name string, lat, lon float64) map[string]interface{} {
	t.Helper()

	resp, model := doRequest(t, http.MethodPost, server.URL+"/api/planner/trips/"+tripID+"/stops?key=TEST",
		map[string]interface{}{"name": name, "lat": lat, "lon": lon})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return entryFromModel(t, model)
}

func TestAddStopHandler(t *testing.T) {
	api := createTestApi(t)
	server := serveApi(t, api)
	tripID := createTestTrip(t, server, nil)

	entry := addTestStop(t, server, tripID, "Plaza Mayor", -12.05, -77.03)

	assert.NotEmpty(t, entry["id"])
	assert.Equal(t, "Plaza Mayor", entry["name"])
	assert.Equal(t, -12.05, entry["lat"])
	assert.Equal(t, -77.03, entry["lon"])
}

func TestAddStopHandlerValidatesCoordinates(t *testing.T) {
	api := createTestApi(t)
	server := serveApi(t, api)
	tripID := createTestTrip(t, server, nil)

	resp, _ := doRequest(t, http.MethodPost, server.URL+"/api/planner/trips/"+tripID+"/stops?key=TEST",
		map[string]interface{}{"name": "Bad", "lat": 95.0, "lon": -200.0})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAddStopHandlerRequireStopName(t *testing.T) {
	api := createTestApi(t)
	server := serveApi(t, api)
	tripID := createTestTrip(t, server, map[string]interface{}{
		"accessToken":     "pk.test",
		"requireStopName": true,
	})

	resp, err := http.Post(server.URL+"/api/planner/trips/"+tripID+"/stops?key=TEST",
		"application/json", jsonBody(t, map[string]interface{}{"lat": -12.05, "lon": -77.03}))
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Contains(t, body.FieldErrors, "name")

	// Rejection leaves the stop list unchanged and records exactly one
	// notification.
	_, model := doRequest(t, http.MethodGet, server.URL+"/api/planner/trips/"+tripID+"?key=TEST", nil)
	entry := entryFromModel(t, model)
	stops, ok := entry["stops"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, stops)

	notifications, ok := entry["notifications"].([]interface{})
	require.True(t, ok)
	assert.Len(t, notifications, 1)
}

func TestRemoveStopHandler(t *testing.T) {
	api := createTestApi(t)
	server := serveApi(t, api)
	tripID := createTestTrip(t, server, nil)

	first := addTestStop(t, server, tripID, "Alpha", 20, 10)
	second := addTestStop(t, server, tripID, "Bravo", 22, 12)

	resp, model := doRequest(t, http.MethodDelete,
		server.URL+"/api/planner/trips/"+tripID+"/stops/"+first["id"].(string)+"?key=TEST", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	entry := entryFromModel(t, model)
	stops, ok := entry["stops"].([]interface{})
	require.True(t, ok)
	require.Len(t, stops, 1)

	remaining, ok := stops[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, second["id"], remaining["id"])
}

func TestRemoveStopHandlerNotFound(t *testing.T) {
	api := createTestApi(t)
	server := serveApi(t, api)
	tripID := createTestTrip(t, server, nil)

	resp, _ := doRequest(t, http.MethodDelete,
		server.URL+"/api/planner/trips/"+tripID+"/stops/missing?key=TEST", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSuggestStopHandler(t *testing.T) {
	api := createTestApi(t)
	server := serveApi(t, api)
	tripID := createTestTrip(t, server, nil)

	addTestStop(t, server, tripID, "A", 20, 10)
	addTestStop(t, server, tripID, "B", 22, 12)

	resp, model := doRequest(t, http.MethodPost,
		server.URL+"/api/planner/trips/"+tripID+"/suggest?key=TEST", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	entry := entryFromModel(t, model)
	assert.Equal(t, 14.0, entry["lon"])
	assert.Equal(t, 22.0, entry["lat"])
}

func TestSuggestStopHandlerNotEnoughStops(t *testing.T) {
	api := createTestApi(t)
	server := serveApi(t, api)
	tripID := createTestTrip(t, server, nil)

	addTestStop(t, server, tripID, "A", 20, 10)

	resp, _ := doRequest(t, http.MethodPost,
		server.URL+"/api/planner/trips/"+tripID+"/suggest?key=TEST", nil)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
