package insight

import (
	"math"

	"github.com/montanaflynn/stats"

	"mavhu/models"
)

// MapCenter computes the map center for an area of interest: the single
// coordinate itself, or the arithmetic mean of all coordinates for a
// polygon. ok is false for an empty list.
func MapCenter(coords []models.Coordinate) (center models.Coordinate, ok bool) {
	switch len(coords) {
	case 0:
		return models.Coordinate{}, false
	case 1:
		return models.Coordinate{Lat: coords[0].Lat, Lon: coords[0].Lon}, true
	}

	lats := make([]float64, len(coords))
	lons := make([]float64, len(coords))
	for i, c := range coords {
		lats[i] = c.Lat
		lons[i] = c.Lon
	}
	latMean, _ := stats.Mean(lats)
	lonMean, _ := stats.Mean(lons)
	return models.Coordinate{Lat: latMean, Lon: lonMean}, true
}

// MapZoom picks an initial zoom level from the coordinate spread: a single
// marker zooms close, wide polygons zoom out.
func MapZoom(coords []models.Coordinate) int {
	if len(coords) <= 1 {
		return 13
	}
	var minLat, maxLat = coords[0].Lat, coords[0].Lat
	var minLon, maxLon = coords[0].Lon, coords[0].Lon
	for _, c := range coords[1:] {
		minLat = math.Min(minLat, c.Lat)
		maxLat = math.Max(maxLat, c.Lat)
		minLon = math.Min(minLon, c.Lon)
		maxLon = math.Max(maxLon, c.Lon)
	}
	span := math.Max(maxLat-minLat, maxLon-minLon)
	switch {
	case span < 0.01:
		return 14
	case span < 0.1:
		return 12
	case span < 1:
		return 9
	case span < 5:
		return 7
	default:
		return 5
	}
}
