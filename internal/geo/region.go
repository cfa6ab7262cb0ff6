package geo

import (
	"placebook/internal/domain/entity"

	"github.com/paulmach/orb"
)

// minRegionDelta keeps a single marker from zooming the map to street level.
const minRegionDelta = 0.05

// Region is a map viewport: a center plus the spans it covers.
type Region struct {
	Latitude       float64
	Longitude      float64
	LatitudeDelta  float64
	LongitudeDelta float64
}

// Bound returns the bounding box of points. ok is false when points is empty.
func Bound(points []entity.LatLng) (orb.Bound, bool) {
	if len(points) == 0 {
		return orb.Bound{}, false
	}

	mp := make(orb.MultiPoint, 0, len(points))
	for _, p := range points {
		mp = append(mp, OrbPoint(p))
	}

	return mp.Bound(), true
}

// RegionFor returns a viewport covering all points, or fallback when there are none.
func RegionFor(points []entity.LatLng, fallback Region) Region {
	b, ok := Bound(points)
	if !ok {
		return fallback
	}

	center := b.Center()

	return Region{
		Latitude:       center.Lat(),
		Longitude:      center.Lon(),
		LatitudeDelta:  max(b.Top()-b.Bottom(), minRegionDelta),
		LongitudeDelta: max(b.Right()-b.Left(), minRegionDelta),
	}
}
