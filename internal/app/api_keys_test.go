package app

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"planner.wayfinder.org/internal/appconf"
)

func TestIsInvalidAPIKey(t *testing.T) {
	app := &Application{
		Config: appconf.Config{ApiKeys: []string{"TEST", "other"}},
	}

	assert.False(t, app.IsInvalidAPIKey("TEST"))
	assert.False(t, app.IsInvalidAPIKey("other"))
	assert.True(t, app.IsInvalidAPIKey("wrong"))
	assert.True(t, app.IsInvalidAPIKey(""))
}

func TestRequestHasInvalidAPIKey(t *testing.T) {
	app := &Application{
		Config: appconf.Config{ApiKeys: []string{"TEST"}},
	}

	r := httptest.NewRequest("GET", "/api/planner/current-time.json?key=TEST", nil)
	assert.False(t, app.RequestHasInvalidAPIKey(r))

	r = httptest.NewRequest("GET", "/api/planner/current-time.json", nil)
	assert.True(t, app.RequestHasInvalidAPIKey(r))
}
