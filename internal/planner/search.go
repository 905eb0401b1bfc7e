package planner

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"planner.wayfinder.org/internal/models"
)

const (
	// DefaultDebounce is the idle delay before a typed query is sent to
	// the geocoder.
	DefaultDebounce = 300 * time.Millisecond

	// DefaultMinQueryLength is the minimum query length; shorter queries
	// clear held results without issuing a request.
	DefaultMinQueryLength = 3

	searchTimeout = 5 * time.Second
)

// Searcher holds a trip's ephemeral search state. Typed queries are
// debounced: every keystroke resets the single timer, so only the most
// recent query is dispatched. Each dispatch carries a generation number
// and responses from superseded queries are discarded, so a slow
// response to an old query can never clobber a newer one.
type Searcher struct {
	mu        sync.Mutex
	geocoder  Geocoder
	delay     time.Duration
	minLength int
	timer     *time.Timer
	gen       uint64
	results   []models.SearchResult
	pending   sync.WaitGroup
	fail      func(error)
}

// NewSearcher creates a Searcher over the given geocoder. fail is
// invoked (outside any Searcher lock) when a dispatched query fails.
func NewSearcher(geocoder Geocoder, delay time.Duration, minLength int, fail func(error)) *Searcher {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	if minLength <= 0 {
		minLength = DefaultMinQueryLength
	}
	if fail == nil {
		fail = func(error) {}
	}
	return &Searcher{
		geocoder:  geocoder,
		delay:     delay,
		minLength: minLength,
		fail:      fail,
	}
}

// Type records a keystroke. The debounce timer is reset; a query below
// the minimum length clears held results and schedules nothing.
func (s *Searcher) Type(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.cancelTimerLocked()

	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < s.minLength {
		s.results = nil
		return
	}

	gen := s.gen
	s.pending.Add(1)
	s.timer = time.AfterFunc(s.delay, func() {
		defer s.pending.Done()
		s.run(query, gen)
	})
}

// Search dispatches a query immediately, bypassing the debounce timer.
// Any pending typed query is invalidated first. A query below the
// minimum length clears held results and issues no request.
func (s *Searcher) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	s.mu.Lock()
	s.gen++
	s.cancelTimerLocked()

	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < s.minLength {
		s.results = nil
		s.mu.Unlock()
		return []models.SearchResult{}, nil
	}
	gen := s.gen
	s.mu.Unlock()

	results, err := s.geocoder.Search(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if gen == s.gen {
		s.results = results
	}
	return results, nil
}

// Results returns a copy of the currently held candidates.
func (s *Searcher) Results() []models.SearchResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	results := make([]models.SearchResult, len(s.results))
	copy(results, s.results)
	return results
}

// Clear drops held results and invalidates any pending query.
func (s *Searcher) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.cancelTimerLocked()
	s.results = nil
}

// Stop invalidates pending queries and waits for any in-flight dispatch
// to finish.
func (s *Searcher) Stop() {
	s.Clear()
	s.pending.Wait()
}

// cancelTimerLocked stops the pending timer if it has not fired yet.
// The matching WaitGroup slot is released here when the callback will
// never run.
func (s *Searcher) cancelTimerLocked() {
	if s.timer == nil {
		return
	}
	if s.timer.Stop() {
		s.pending.Done()
	}
	s.timer = nil
}

func (s *Searcher) run(query string, gen uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
	defer cancel()

	results, err := s.geocoder.Search(ctx, query)

	s.mu.Lock()
	if gen != s.gen {
		// A newer query owns the display; drop this response.
		s.mu.Unlock()
		return
	}
	if err != nil {
		s.mu.Unlock()
		s.fail(err)
		return
	}
	s.results = results
	s.mu.Unlock()
}
