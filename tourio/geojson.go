package tourio

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// WriteGeoJSON writes a FeatureCollection with the closed tour as a
// LineString feature (id "tour", carrying props) followed by one Point
// feature per city with its id and visiting order.
func WriteGeoJSON(w io.Writer, pts []r2.Point, tour []int, props map[string]interface{}) error {
	if len(tour) == 0 {
		return errors.New("tourio: empty tour")
	}

	coords := make([]geom.Coord, 0, len(tour)+1)
	for _, id := range tour {
		if id < 0 || id >= len(pts) {
			return errors.Errorf("tourio: city %d out of range [0,%d)", id, len(pts))
		}
		coords = append(coords, geom.Coord{pts[id].X, pts[id].Y})
	}
	coords = append(coords, coords[0])

	line, err := geom.NewLineString(geom.XY).SetCoords(coords)
	if err != nil {
		return errors.Wrap(err, "tourio: build tour line")
	}

	fc := &geojson.FeatureCollection{Features: make([]*geojson.Feature, 0, len(tour)+1)}
	fc.Features = append(fc.Features, &geojson.Feature{
		ID:         "tour",
		Geometry:   line,
		Properties: props,
	})
	for order, id := range tour {
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       "city-" + strconv.Itoa(id),
			Geometry: geom.NewPointFlat(geom.XY, []float64{pts[id].X, pts[id].Y}),
			Properties: map[string]interface{}{
				"id":    id,
				"order": order,
			},
		})
	}

	return errors.Wrap(json.NewEncoder(w).Encode(fc), "tourio: encode geojson")
}
