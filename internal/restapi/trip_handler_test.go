package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTripHandler(t *testing.T) {
	api := createTestApi(t)
	server := serveApi(t, api)
	tripID := createTestTrip(t, server, nil)

	resp, model := doRequest(t, http.MethodGet, server.URL+"/api/planner/trips/"+tripID+"?key=TEST", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	entry := entryFromModel(t, model)
	assert.Equal(t, tripID, entry["id"])

	stops, ok := entry["stops"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, stops)
}

func TestTripHandlerNotFound(t *testing.T) {
	api := createTestApi(t)
	server := serveApi(t, api)

	resp, model := doRequest(t, http.MethodGet, server.URL+"/api/planner/trips/missing?key=TEST", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "resource not found", model.Text)
}
