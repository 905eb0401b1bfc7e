package transit

import (
	"sort"

	"planner.wayfinder.org/internal/utils"
)

type placeWithDistance struct {
	place    Place
	distance float64
}

// Nearby returns up to maxCount places within radius meters of the
// given point, ordered by distance.
func (ix *Index) Nearby(lat, lon, radius float64, maxCount int) []Place {
	if radius == 0 {
		radius = 1000
	}

	var candidates []placeWithDistance
	for _, place := range ix.places {
		distance := utils.Haversine(lat, lon, place.Lat, place.Lon)
		if distance <= radius {
			candidates = append(candidates, placeWithDistance{place, distance})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	var places []Place
	for i := 0; i < len(candidates) && i < maxCount; i++ {
		places = append(places, candidates[i].place)
	}
	return places
}
