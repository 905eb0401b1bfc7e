// Package planner holds trip sessions: ordered stop lists, route
// refresh against the directions provider, debounced location search,
// and per-trip notifications. Nothing here is persisted.
package planner

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"planner.wayfinder.org/internal/geocode"
	"planner.wayfinder.org/internal/transit"
)

// Config carries planner-wide settings and the defaults applied to new
// trips.
type Config struct {
	// ProviderToken is the server-wide default credential; a trip
	// created without its own token inherits it.
	ProviderToken   string
	ProviderBaseURL string
	SearchCountry   string

	// HTTPClient, when set, is shared by all provider clients.
	HTTPClient *http.Client

	// LocalIndex backs location search for trips without a credential.
	LocalIndex *transit.Index

	RequireStopName bool
	SearchEnabled   bool
	SearchDebounce  time.Duration
	MinQueryLength  int
}

// Planner owns the in-memory trip table.
type Planner struct {
	cfg    Config
	logger *slog.Logger

	mu    sync.RWMutex
	trips map[string]*Trip
}

// New creates a Planner.
func New(cfg Config, logger *slog.Logger) *Planner {
	return &Planner{
		cfg:    cfg,
		logger: logger,
		trips:  make(map[string]*Trip),
	}
}

// TripOptions are per-trip overrides supplied at creation. Nil pointer
// fields fall back to the planner defaults.
type TripOptions struct {
	AccessToken     string
	RequireStopName *bool
	SearchEnabled   *bool
}

// CreateTrip creates a trip session. The credential is checked only for
// non-emptiness: any non-empty token activates provider-backed routing
// and search, and a bad token surfaces later as failed provider
// requests. A trip without a token falls back to the local transit
// index for search, when one is configured.
func (p *Planner) CreateTrip(opts TripOptions) *Trip {
	token := opts.AccessToken
	if token == "" {
		token = p.cfg.ProviderToken
	}

	requireStopName := p.cfg.RequireStopName
	if opts.RequireStopName != nil {
		requireStopName = *opts.RequireStopName
	}
	searchEnabled := p.cfg.SearchEnabled
	if opts.SearchEnabled != nil {
		searchEnabled = *opts.SearchEnabled
	}

	var directions Directions
	var geocoder Geocoder
	if token != "" {
		client := p.newProviderClient(token)
		directions = client
		geocoder = client
	} else if p.cfg.LocalIndex != nil {
		geocoder = p.cfg.LocalIndex
	}

	trip := &Trip{
		id:              uuid.NewString(),
		active:          token != "",
		requireStopName: requireStopName,
		searchEnabled:   searchEnabled,
		directions:      directions,
		logger:          p.logger,
	}
	if geocoder != nil {
		trip.searcher = NewSearcher(geocoder, p.cfg.SearchDebounce, p.cfg.MinQueryLength, trip.searchFailed)
	}

	p.mu.Lock()
	p.trips[trip.id] = trip
	p.mu.Unlock()

	if p.logger != nil {
		p.logger.Info("trip created",
			slog.String("trip_id", trip.id),
			slog.Bool("active", trip.active))
	}
	return trip
}

// Trip looks up a session by ID.
func (p *Planner) Trip(id string) (*Trip, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	trip, ok := p.trips[id]
	if !ok {
		return nil, ErrTripNotFound
	}
	return trip, nil
}

// LocalIndex returns the configured offline place index, or nil.
func (p *Planner) LocalIndex() *transit.Index {
	return p.cfg.LocalIndex
}

// Shutdown stops all pending search timers and waits for in-flight
// search dispatches to finish.
func (p *Planner) Shutdown() {
	p.mu.RLock()
	trips := make([]*Trip, 0, len(p.trips))
	for _, trip := range p.trips {
		trips = append(trips, trip)
	}
	p.mu.RUnlock()

	for _, trip := range trips {
		trip.mu.Lock()
		searcher := trip.searcher
		trip.mu.Unlock()
		if searcher != nil {
			searcher.Stop()
		}
	}
}

func (p *Planner) newProviderClient(token string) *geocode.Client {
	opts := []geocode.Option{}
	if p.cfg.SearchCountry != "" {
		opts = append(opts, geocode.WithCountry(p.cfg.SearchCountry))
	}
	if p.cfg.ProviderBaseURL != "" {
		opts = append(opts, geocode.WithBaseURL(p.cfg.ProviderBaseURL))
	}
	if p.cfg.HTTPClient != nil {
		opts = append(opts, geocode.WithHTTPClient(p.cfg.HTTPClient))
	}
	return geocode.NewClient(token, opts...)
}
