// Package geo converts between the GeoJSON wire shape of a location and the
// internal latitude/longitude shape. It is the only code allowed to read or
// write raw wire coordinates.
package geo

import (
	"fmt"
	"math"
	"strings"

	"placebook/internal/domain/entity"
	domainerrors "placebook/internal/domain/errors"

	"github.com/paulmach/orb"
)

// GeometryTypePoint is the only geometry type a place location may carry.
const GeometryTypePoint = "Point"

const (
	maxLatitude  = 90.0
	maxLongitude = 180.0
)

// Point is a GeoJSON point as sent by the places service: coordinates are [longitude, latitude].
type Point struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// ToInternal converts a wire point to LatLng.
// A missing type is tolerated; any type other than "Point" is malformed.
func ToInternal(p Point) (entity.LatLng, error) {
	if p.Type != "" && !strings.EqualFold(p.Type, GeometryTypePoint) {
		return entity.LatLng{}, domainerrors.ErrMalformedGeometry.WithDetails(fmt.Sprintf("unexpected geometry type %q", p.Type))
	}
	if len(p.Coordinates) != 2 {
		return entity.LatLng{}, domainerrors.ErrMalformedGeometry.WithDetails(fmt.Sprintf("got %d coordinates", len(p.Coordinates)))
	}

	op := orb.Point{p.Coordinates[0], p.Coordinates[1]}
	ll := entity.LatLng{Latitude: op.Lat(), Longitude: op.Lon()}
	if err := Validate(ll); err != nil {
		return entity.LatLng{}, err
	}

	return ll, nil
}

// ToWire converts LatLng to a wire point, rejecting non-finite or out-of-range values.
func ToWire(ll entity.LatLng) (Point, error) {
	if err := Validate(ll); err != nil {
		return Point{}, err
	}

	op := OrbPoint(ll)

	return Point{
		Type:        GeometryTypePoint,
		Coordinates: []float64{op.Lon(), op.Lat()},
	}, nil
}

// Validate checks that both values are finite and inside the WGS84 range.
func Validate(ll entity.LatLng) error {
	if !isFinite(ll.Latitude) || ll.Latitude < -maxLatitude || ll.Latitude > maxLatitude {
		return domainerrors.ErrInvalidCoordinate.WithDetails(fmt.Sprintf("latitude %v outside [-90,90]", ll.Latitude))
	}
	if !isFinite(ll.Longitude) || ll.Longitude < -maxLongitude || ll.Longitude > maxLongitude {
		return domainerrors.ErrInvalidCoordinate.WithDetails(fmt.Sprintf("longitude %v outside [-180,180]", ll.Longitude))
	}

	return nil
}

// OrbPoint returns ll in orb's [lon, lat] order.
func OrbPoint(ll entity.LatLng) orb.Point {
	return orb.Point{ll.Longitude, ll.Latitude}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
