// Package transit builds an offline place index from a static GTFS
// feed. Trips without a provider token fall back to this index for
// location search.
package transit

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/jamespfennell/gtfs"
	"planner.wayfinder.org/internal/models"
)

const defaultSearchLimit = 5

// Place is a named point from the feed, usable as a stop position.
type Place struct {
	ID   string
	Name string
	Lat  float64
	Lon  float64
}

// Index is an in-memory name-searchable set of places.
type Index struct {
	places []Place
}

// Load reads a static GTFS feed from a local path or an http(s) URL and
// builds an Index from its stops.
func Load(source string) (*Index, error) {
	b, err := rawFeedData(source)
	if err != nil {
		return nil, err
	}

	staticData, err := gtfs.ParseStatic(b, gtfs.ParseStaticOptions{})
	if err != nil {
		return nil, fmt.Errorf("transit: parse GTFS feed: %w", err)
	}

	return NewIndex(staticData.Stops), nil
}

func rawFeedData(source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, err := http.Get(source)
		if err != nil {
			return nil, fmt.Errorf("transit: download GTFS feed: %w", err)
		}
		defer resp.Body.Close() // nolint:errcheck

		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("transit: read GTFS feed: %w", err)
		}
		return b, nil
	}

	b, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("transit: read GTFS file: %w", err)
	}
	return b, nil
}

// NewIndex builds an Index from parsed GTFS stops. Stops without
// coordinates are skipped.
func NewIndex(stops []gtfs.Stop) *Index {
	places := make([]Place, 0, len(stops))
	for _, stop := range stops {
		if stop.Latitude == nil || stop.Longitude == nil || stop.Name == "" {
			continue
		}
		places = append(places, Place{
			ID:   stop.Id,
			Name: stop.Name,
			Lat:  *stop.Latitude,
			Lon:  *stop.Longitude,
		})
	}

	sort.Slice(places, func(i, j int) bool {
		return places[i].Name < places[j].Name
	})

	return &Index{places: places}
}

// Len reports the number of indexed places.
func (ix *Index) Len() int {
	return len(ix.places)
}

// Search implements the planner's geocoder contract against the local
// index: case-insensitive substring match on place names, capped at the
// same candidate limit the remote provider uses.
func (ix *Index) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return []models.SearchResult{}, nil
	}

	results := make([]models.SearchResult, 0, defaultSearchLimit)
	for _, place := range ix.places {
		if !strings.Contains(strings.ToLower(place.Name), needle) {
			continue
		}
		results = append(results, models.SearchResult{
			Label: place.Name,
			Lat:   place.Lat,
			Lon:   place.Lon,
		})
		if len(results) == defaultSearchLimit {
			break
		}
	}
	return results, nil
}
