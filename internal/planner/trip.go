package planner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"planner.wayfinder.org/internal/logging"
	"planner.wayfinder.org/internal/models"
)

// suggestLonOffset is the fixed coordinate offset applied east of the
// last stop when fabricating a suggested next stop.
const suggestLonOffset = 2.0

// Directions is the driving-directions side of the provider.
type Directions interface {
	Route(ctx context.Context, waypoints []models.CoordinatePoint) (*models.Route, error)
}

// Geocoder is the forward-geocoding side of the provider. The offline
// transit index satisfies it as well.
type Geocoder interface {
	Search(ctx context.Context, query string) ([]models.SearchResult, error)
}

// Trip is one planning session: an ordered list of named stops, the
// driving route connecting them, ephemeral search results, and a feed
// of user-facing notifications. All state is in memory only.
type Trip struct {
	mu              sync.Mutex
	id              string
	active          bool
	requireStopName bool
	searchEnabled   bool
	pendingName     string
	stops           []models.Stop
	route           *models.Route
	routeGen        uint64
	notifications   []models.Notification
	stopSeq         int
	directions      Directions
	searcher        *Searcher
	logger          *slog.Logger
}

// ID returns the trip identifier.
func (t *Trip) ID() string {
	return t.id
}

// Active reports whether the trip carries a provider credential and can
// issue provider-backed requests.
func (t *Trip) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// AddStop appends a stop to the ordered list and refreshes the route.
// With an empty name, the pending stop name is consumed if set;
// otherwise the trip either rejects the stop (RequireStopName) with a
// single notification, or auto-generates a name.
func (t *Trip) AddStop(ctx context.Context, name string, lat, lon float64) (models.Stop, error) {
	t.mu.Lock()

	name = strings.TrimSpace(name)
	if name == "" {
		switch {
		case t.pendingName != "":
			name = t.pendingName
			t.pendingName = ""
		case t.requireStopName:
			t.notifyLocked("Name your stop before placing it", models.NotificationWarning)
			t.mu.Unlock()
			return models.Stop{}, ErrStopNameRequired
		default:
			t.stopSeq++
			name = fmt.Sprintf("Stop %d", t.stopSeq)
		}
	}

	stop := models.NewStop(uuid.NewString(), name, lat, lon)
	t.stops = append(t.stops, stop)
	t.notifyLocked(fmt.Sprintf("Added %s to your trip", name), models.NotificationInfo)
	t.mu.Unlock()

	t.refreshRoute(ctx)
	return stop, nil
}

// RemoveStop removes exactly one stop by identifier, preserving the
// order of the remaining stops, and refreshes the route.
func (t *Trip) RemoveStop(ctx context.Context, stopID string) error {
	t.mu.Lock()

	index := -1
	for i, stop := range t.stops {
		if stop.ID == stopID {
			index = i
			break
		}
	}
	if index == -1 {
		t.mu.Unlock()
		return ErrStopNotFound
	}

	name := t.stops[index].Name
	t.stops = append(t.stops[:index], t.stops[index+1:]...)
	t.notifyLocked(fmt.Sprintf("Removed %s from your trip", name), models.NotificationInfo)
	t.mu.Unlock()

	t.refreshRoute(ctx)
	return nil
}

// SuggestStop fabricates a stop offset from the last stop and appends
// it. With fewer than two stops it changes nothing and returns
// ErrNotEnoughStops.
func (t *Trip) SuggestStop(ctx context.Context) (models.Stop, error) {
	t.mu.Lock()

	if len(t.stops) < 2 {
		t.mu.Unlock()
		return models.Stop{}, ErrNotEnoughStops
	}

	last := t.stops[len(t.stops)-1]
	t.stopSeq++
	name := fmt.Sprintf("Stop %d", t.stopSeq)
	stop := models.NewStop(uuid.NewString(), name, last.Lat, last.Lon+suggestLonOffset)
	t.stops = append(t.stops, stop)
	t.notifyLocked(fmt.Sprintf("Added suggested stop %s", name), models.NotificationInfo)
	t.mu.Unlock()

	t.refreshRoute(ctx)
	return stop, nil
}

// SetPendingName sets the name the next placed or selected stop will
// take.
func (t *Trip) SetPendingName(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pendingName = strings.TrimSpace(name)
}

// Search dispatches a free-text place query immediately. Queries below
// the minimum length clear held results without a provider request.
func (t *Trip) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	searcher, err := t.searchTarget()
	if err != nil {
		return nil, err
	}

	results, err := searcher.Search(ctx, query)
	if err != nil {
		t.searchFailed(err)
		return nil, err
	}
	return results, nil
}

// TypeQuery records a keystroke in the trip's search box. The query is
// dispatched only after the debounce delay elapses without further
// keystrokes.
func (t *Trip) TypeQuery(query string) error {
	searcher, err := t.searchTarget()
	if err != nil {
		return err
	}
	searcher.Type(query)
	return nil
}

// SelectResult turns a held search result into a new stop named by the
// pending stop name. Without a pending name the selection is rejected
// with a single notification and no state change.
func (t *Trip) SelectResult(ctx context.Context, index int) (models.Stop, error) {
	t.mu.Lock()

	if t.searcher == nil {
		t.mu.Unlock()
		return models.Stop{}, ErrSearchUnavailable
	}

	results := t.searcher.Results()
	if index < 0 || index >= len(results) {
		t.mu.Unlock()
		return models.Stop{}, ErrInvalidSelection
	}

	if t.pendingName == "" {
		t.notifyLocked("Name your stop before selecting a place", models.NotificationWarning)
		t.mu.Unlock()
		return models.Stop{}, ErrStopNameRequired
	}

	result := results[index]
	stop := models.NewStop(uuid.NewString(), t.pendingName, result.Lat, result.Lon)
	t.pendingName = ""
	t.stops = append(t.stops, stop)
	t.searcher.Clear()
	t.notifyLocked(fmt.Sprintf("Added %s to your trip", stop.Name), models.NotificationInfo)
	t.mu.Unlock()

	t.refreshRoute(ctx)
	return stop, nil
}

// Route returns the current route, or nil when none has been computed.
func (t *Trip) Route() *models.Route {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.route
}

// Stops returns a copy of the ordered stop list.
func (t *Trip) Stops() []models.Stop {
	t.mu.Lock()
	defer t.mu.Unlock()
	stops := make([]models.Stop, len(t.stops))
	copy(stops, t.stops)
	return stops
}

// Notifications returns a copy of the notification feed.
func (t *Trip) Notifications() []models.Notification {
	t.mu.Lock()
	defer t.mu.Unlock()
	notifications := make([]models.Notification, len(t.notifications))
	copy(notifications, t.notifications)
	return notifications
}

// Snapshot returns the full API view of the trip.
func (t *Trip) Snapshot() models.TripDetails {
	t.mu.Lock()
	defer t.mu.Unlock()

	details := models.TripDetails{
		ID:              t.id,
		Active:          t.active,
		RequireStopName: t.requireStopName,
		SearchEnabled:   t.searchEnabled,
		PendingStopName: t.pendingName,
		Stops:           make([]models.Stop, len(t.stops)),
		Route:           t.route,
		SearchResults:   []models.SearchResult{},
		Notifications:   make([]models.Notification, len(t.notifications)),
	}
	copy(details.Stops, t.stops)
	copy(details.Notifications, t.notifications)
	if t.searcher != nil {
		details.SearchResults = t.searcher.Results()
	}
	return details
}

// refreshRoute recomputes the route for the current ordered stop list.
// With fewer than two stops nothing happens and a stale route, if any,
// stays in place. A failed refresh is logged and surfaced as a
// notification; the previous route is kept.
func (t *Trip) refreshRoute(ctx context.Context) {
	t.mu.Lock()
	if len(t.stops) < 2 || t.directions == nil {
		t.mu.Unlock()
		return
	}

	t.routeGen++
	gen := t.routeGen
	waypoints := make([]models.CoordinatePoint, len(t.stops))
	for i, stop := range t.stops {
		waypoints[i] = stop.Coordinate()
	}
	directions := t.directions
	t.mu.Unlock()

	route, err := directions.Route(ctx, waypoints)

	t.mu.Lock()
	defer t.mu.Unlock()
	if gen != t.routeGen {
		// A newer stop-list change owns the route; drop this response.
		return
	}
	if err != nil {
		logging.LogError(t.logger, "route refresh failed", err,
			slog.String("component", "planner"),
			slog.String("trip_id", t.id))
		t.notifyLocked("Could not refresh the route", models.NotificationWarning)
		return
	}
	t.route = route
}

func (t *Trip) searchTarget() (*Searcher, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.searchEnabled {
		return nil, ErrSearchDisabled
	}
	if t.searcher == nil {
		return nil, ErrSearchUnavailable
	}
	return t.searcher, nil
}

func (t *Trip) searchFailed(err error) {
	logging.LogError(t.logger, "location search failed", err,
		slog.String("component", "planner"),
		slog.String("trip_id", t.id))
	t.notify("Location search failed", models.NotificationWarning)
}

func (t *Trip) notify(message, level string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.notifyLocked(message, level)
}

func (t *Trip) notifyLocked(message, level string) {
	t.notifications = append(t.notifications, models.NewNotification(message, level))
}
