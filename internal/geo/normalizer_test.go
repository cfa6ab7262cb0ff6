package geo

import (
	"encoding/json"
	"math"
	"testing"

	"placebook/internal/domain/entity"
	domainerrors "placebook/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInternal_MapsLongitudeFirst(t *testing.T) {
	ll, err := ToInternal(Point{Type: "Point", Coordinates: []float64{10.6866, 35.0068}})
	require.NoError(t, err)
	assert.Equal(t, entity.LatLng{Latitude: 35.0068, Longitude: 10.6866}, ll)
}

func TestToInternal_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		point Point
	}{
		{name: "no coordinates", point: Point{Type: "Point"}},
		{name: "one coordinate", point: Point{Type: "Point", Coordinates: []float64{10}}},
		{name: "three coordinates", point: Point{Type: "Point", Coordinates: []float64{10, 35, 12}}},
		{name: "polygon", point: Point{Type: "Polygon", Coordinates: []float64{10, 35}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToInternal(tt.point)
			assert.ErrorIs(t, err, domainerrors.ErrMalformedGeometry)
		})
	}
}

func TestToInternal_ToleratesMissingType(t *testing.T) {
	ll, err := ToInternal(Point{Coordinates: []float64{-0.1276, 51.5072}})
	require.NoError(t, err)
	assert.InDelta(t, 51.5072, ll.Latitude, 1e-12)
}

func TestToWire_InvalidCoordinates(t *testing.T) {
	tests := []struct {
		name string
		ll   entity.LatLng
	}{
		{name: "latitude too high", ll: entity.LatLng{Latitude: 90.0001, Longitude: 0}},
		{name: "latitude too low", ll: entity.LatLng{Latitude: -91, Longitude: 0}},
		{name: "longitude too high", ll: entity.LatLng{Latitude: 0, Longitude: 180.5}},
		{name: "longitude too low", ll: entity.LatLng{Latitude: 0, Longitude: -181}},
		{name: "nan", ll: entity.LatLng{Latitude: math.NaN(), Longitude: 0}},
		{name: "inf", ll: entity.LatLng{Latitude: 0, Longitude: math.Inf(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToWire(tt.ll)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
		})
	}
}

func TestRoundTrip_WireIdentity(t *testing.T) {
	cases := [][]float64{
		{10.6866, 35.0068},
		{-180, -90},
		{180, 90},
		{0, 0},
		{-73.98565400000001, 40.748817},
		{139.6917, 35.6895},
	}

	for _, coords := range cases {
		wire := Point{Type: GeometryTypePoint, Coordinates: coords}

		ll, err := ToInternal(wire)
		require.NoError(t, err)

		back, err := ToWire(ll)
		require.NoError(t, err)
		assert.Equal(t, wire, back)
	}
}

func TestToInternal_OutOfRangeWireRejected(t *testing.T) {
	// Latitude and longitude swapped on the wire: 120 cannot be a latitude.
	_, err := ToInternal(Point{Type: "Point", Coordinates: []float64{35, 120}})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
}

func TestToWire_JSONShape(t *testing.T) {
	p, err := ToWire(entity.LatLng{Latitude: 35, Longitude: 10})
	require.NoError(t, err)

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Point","coordinates":[10,35]}`, string(raw))
}

func TestRegionFor(t *testing.T) {
	fallback := Region{Latitude: 35.0068, Longitude: 10.6866, LatitudeDelta: 5, LongitudeDelta: 5}
	assert.Equal(t, fallback, RegionFor(nil, fallback))

	single := RegionFor([]entity.LatLng{{Latitude: 36.8, Longitude: 10.18}}, fallback)
	assert.InDelta(t, 36.8, single.Latitude, 1e-9)
	assert.InDelta(t, 10.18, single.Longitude, 1e-9)
	assert.Equal(t, minRegionDelta, single.LatitudeDelta)

	spread := RegionFor([]entity.LatLng{
		{Latitude: 33.0, Longitude: 9.0},
		{Latitude: 37.0, Longitude: 11.0},
	}, fallback)
	assert.InDelta(t, 35.0, spread.Latitude, 1e-9)
	assert.InDelta(t, 10.0, spread.Longitude, 1e-9)
	assert.InDelta(t, 4.0, spread.LatitudeDelta, 1e-9)
	assert.InDelta(t, 2.0, spread.LongitudeDelta, 1e-9)
}
