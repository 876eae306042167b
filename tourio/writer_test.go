package tourio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/golang/geo/r2"
	gj "github.com/paulmach/go.geojson"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadtour/tourio"
)

func TestWriteTour_Format(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, tourio.WriteTour(&buf, []int{0, 2, 1}))
	require.Equal(t, "index\n0\n2\n1\n", buf.String())
}

func TestTour_RoundTrip(t *testing.T) {
	tour := []int{0, 7, 3, 12, 5}
	var buf bytes.Buffer
	require.NoError(t, tourio.WriteTour(&buf, tour))

	got, err := tourio.ReadTour(&buf)
	require.NoError(t, err)
	require.Equal(t, tour, got)
}

func TestReadTour_HeaderOptional(t *testing.T) {
	got, err := tourio.ReadTour(strings.NewReader("4\n1\n\n0\n"))
	require.NoError(t, err)
	require.Equal(t, []int{4, 1, 0}, got)
}

func TestReadTour_InvalidID(t *testing.T) {
	_, err := tourio.ReadTour(strings.NewReader("index\n0\n-1\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 3")

	_, err = tourio.ReadTour(strings.NewReader("index\n0\nabc\n"))
	require.Error(t, err)
}

// --- GeoJSON -----------------------------------------------------------------

func TestWriteGeoJSON_Decodes(t *testing.T) {
	pts := []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	tour := []int{0, 1, 2, 3}

	var buf bytes.Buffer
	require.NoError(t, tourio.WriteGeoJSON(&buf, pts, tour, map[string]interface{}{"cost": 4.0}))

	fc, err := gj.UnmarshalFeatureCollection(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, fc.Features, 1+len(tour))

	line := fc.Features[0]
	require.Equal(t, "tour", line.ID)
	require.True(t, line.Geometry.IsLineString())
	require.Len(t, line.Geometry.LineString, len(tour)+1)
	require.Equal(t, line.Geometry.LineString[0], line.Geometry.LineString[len(tour)])
	require.InDelta(t, 4.0, line.Properties["cost"], 1e-12)

	for order, id := range tour {
		f := fc.Features[order+1]
		require.True(t, f.Geometry.IsPoint())
		require.Equal(t, []float64{pts[id].X, pts[id].Y}, f.Geometry.Point)
		require.InDelta(t, float64(order), f.Properties["order"], 0)
	}

	// Point features read back as the visiting-order city list.
	back, err := tourio.ReadGeoJSON(bytes.NewReader(citiesOnly(t, fc)))
	require.NoError(t, err)
	require.Len(t, back, len(tour))
}

func TestWriteGeoJSON_Errors(t *testing.T) {
	pts := []r2.Point{{X: 0, Y: 0}}
	var buf bytes.Buffer
	require.Error(t, tourio.WriteGeoJSON(&buf, pts, nil, nil))
	require.Error(t, tourio.WriteGeoJSON(&buf, pts, []int{0, 1}, nil))
}

func citiesOnly(t *testing.T, fc *gj.FeatureCollection) []byte {
	t.Helper()
	out := gj.NewFeatureCollection()
	for _, f := range fc.Features[1:] {
		out.AddFeature(f)
	}
	data, err := out.MarshalJSON()
	require.NoError(t, err)

	return data
}
