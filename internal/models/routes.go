package models

// RouteGeometry is the GeoJSON line returned by the directions
// provider. Coordinates are [lon, lat] pairs in waypoint order.
type RouteGeometry struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

// Route is the driving route connecting a trip's ordered stops. It is
// derived state: recomputed wholesale whenever the stop list changes.
type Route struct {
	DistanceMeters  float64       `json:"distanceMeters"`
	DurationSeconds float64       `json:"durationSeconds"`
	Geometry        RouteGeometry `json:"geometry"`
}

func NewRoute(distanceMeters, durationSeconds float64, geometry RouteGeometry) Route {
	return Route{
		DistanceMeters:  distanceMeters,
		DurationSeconds: durationSeconds,
		Geometry:        geometry,
	}
}
