package planner

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/jamespfennell/gtfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"planner.wayfinder.org/internal/logging"
	"planner.wayfinder.org/internal/transit"
)

func newTestPlanner(cfg Config) *Planner {
	logger := logging.NewStructuredLogger(&bytes.Buffer{}, slog.LevelInfo)
	return New(cfg, logger)
}

func boolPtr(v bool) *bool {
	return &v
}

func TestCreateTripWithTokenIsActive(t *testing.T) {
	p := newTestPlanner(Config{SearchEnabled: true})
	defer p.Shutdown()

	trip := p.CreateTrip(TripOptions{AccessToken: "pk.token"})

	assert.True(t, trip.Active())
	assert.NotEmpty(t, trip.ID())

	snapshot := trip.Snapshot()
	assert.True(t, snapshot.SearchEnabled)
	assert.False(t, snapshot.RequireStopName)
}

func TestCreateTripInheritsServerToken(t *testing.T) {
	p := newTestPlanner(Config{ProviderToken: "pk.server", SearchEnabled: true})
	defer p.Shutdown()

	trip := p.CreateTrip(TripOptions{})
	assert.True(t, trip.Active())
}

func TestCreateTripWithoutTokenIsInactive(t *testing.T) {
	p := newTestPlanner(Config{SearchEnabled: true})
	defer p.Shutdown()

	trip := p.CreateTrip(TripOptions{})
	assert.False(t, trip.Active())

	// No provider and no local index: search is unavailable.
	_, err := trip.Search(context.Background(), "plaza")
	assert.ErrorIs(t, err, ErrSearchUnavailable)
}

func TestCreateTripOverridesDefaults(t *testing.T) {
	p := newTestPlanner(Config{RequireStopName: false, SearchEnabled: true})
	defer p.Shutdown()

	trip := p.CreateTrip(TripOptions{
		AccessToken:     "pk.token",
		RequireStopName: boolPtr(true),
		SearchEnabled:   boolPtr(false),
	})

	snapshot := trip.Snapshot()
	assert.True(t, snapshot.RequireStopName)
	assert.False(t, snapshot.SearchEnabled)
}

func TestInactiveTripFallsBackToLocalIndex(t *testing.T) {
	lat, lon := -12.05, -77.03
	index := transit.NewIndex([]gtfs.Stop{
		{Id: "s1", Name: "Plaza Mayor", Latitude: &lat, Longitude: &lon},
	})
	p := newTestPlanner(Config{LocalIndex: index, SearchEnabled: true})
	defer p.Shutdown()

	trip := p.CreateTrip(TripOptions{})
	require.False(t, trip.Active())

	results, err := trip.Search(context.Background(), "plaza")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Plaza Mayor", results[0].Label)
}

func TestTripLookup(t *testing.T) {
	p := newTestPlanner(Config{SearchEnabled: true})
	defer p.Shutdown()

	created := p.CreateTrip(TripOptions{AccessToken: "pk.token"})

	found, err := p.Trip(created.ID())
	require.NoError(t, err)
	assert.Same(t, created, found)

	_, err = p.Trip("missing")
	assert.ErrorIs(t, err, ErrTripNotFound)
}

func TestInactiveTripSkipsRouteRefresh(t *testing.T) {
	p := newTestPlanner(Config{SearchEnabled: true})
	defer p.Shutdown()

	trip := p.CreateTrip(TripOptions{})
	ctx := context.Background()

	_, err := trip.AddStop(ctx, "Alpha", 20, 10)
	require.NoError(t, err)
	_, err = trip.AddStop(ctx, "Bravo", 22, 12)
	require.NoError(t, err)

	assert.Nil(t, trip.Route())
}
