package models

type Stop struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

func NewStop(id, name string, lat, lon float64) Stop {
	return Stop{
		ID:   id,
		Name: name,
		Lat:  lat,
		Lon:  lon,
	}
}

func (s Stop) Coordinate() CoordinatePoint {
	return CoordinatePoint{Lat: s.Lat, Lon: s.Lon}
}
