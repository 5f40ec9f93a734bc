package geo

import (
	"explore-places/internal/types"

	"github.com/tidwall/geodesic"
)

// DistanceKm returns the geodesic distance between two coordinates in
// kilometers, solved on the WGS84 ellipsoid. Callers must pass resolved
// coordinates; there is no null sentinel at this level.
func DistanceKm(a, b types.Coords) float64 {
	var meters float64
	geodesic.WGS84.Inverse(a.Latitude, a.Longitude, b.Latitude, b.Longitude, &meters, nil, nil)
	return meters / 1000
}
