package models

import (
	"strconv"
	"strings"
)

type CoordinatePoint struct {
	Lat float64
	Lon float64
}

// FormatLonLat renders a point as "lon,lat", the order the directions
// provider expects.
func (p CoordinatePoint) FormatLonLat() string {
	return strconv.FormatFloat(p.Lon, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lat, 'f', -1, 64)
}

// JoinWaypoints joins ordered points into the semicolon-separated
// coordinate list used by the directions endpoint.
func JoinWaypoints(points []CoordinatePoint) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = p.FormatLonLat()
	}
	return strings.Join(parts, ";")
}

func ComparePoints(a, b CoordinatePoint) int {
	if a.Lat < b.Lat {
		return -1
	}
	if a.Lat > b.Lat {
		return 1
	}
	if a.Lon < b.Lon {
		return -1
	}
	if a.Lon > b.Lon {
		return 1
	}
	return 0
}
