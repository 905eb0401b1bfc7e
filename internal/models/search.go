package models

// SearchResult is an ephemeral geocoding candidate. Results are held
// only until a selection is made or the query changes.
type SearchResult struct {
	Label string  `json:"label"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

func (r SearchResult) Coordinate() CoordinatePoint {
	return CoordinatePoint{Lat: r.Lat, Lon: r.Lon}
}
