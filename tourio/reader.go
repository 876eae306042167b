package tourio

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang/geo/r2"
	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
)

// ErrNoCities is returned when an input holds no city at all.
var ErrNoCities = errors.New("tourio: no cities")

// ReadCities parses CSV records "x,y". A first record whose fields are not
// both numbers is taken as a header and skipped; any later non-numeric or
// non-finite value is an error naming its line.
func ReadCities(r io.Reader) ([]r2.Point, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var (
		pts  []r2.Point
		line int
	)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "tourio: read csv")
		}
		line, _ = cr.FieldPos(0)

		p, perr := parsePoint(rec[0], rec[1])
		if perr != nil {
			if len(pts) == 0 && line == 1 {
				continue // header
			}

			return nil, errors.Wrapf(perr, "tourio: line %d", line)
		}
		pts = append(pts, p)
	}
	if len(pts) == 0 {
		return nil, ErrNoCities
	}

	return pts, nil
}

func parsePoint(xs, ys string) (r2.Point, error) {
	x, err := parseCoord(xs)
	if err != nil {
		return r2.Point{}, err
	}
	y, err := parseCoord(ys)
	if err != nil {
		return r2.Point{}, err
	}

	return r2.Point{X: x, Y: y}, nil
}

func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Errorf("non-finite coordinate %q", s)
	}

	return v, nil
}

// ReadGeoJSON parses a FeatureCollection and returns the coordinates of its
// Point features and of every position of its MultiPoint features, in order.
// Any other geometry type is rejected.
func ReadGeoJSON(r io.Reader) ([]r2.Point, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "tourio: read geojson")
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrap(err, "tourio: decode geojson")
	}

	var pts []r2.Point
	for i, f := range fc.Features {
		g := f.Geometry
		switch {
		case g == nil:
			return nil, errors.Errorf("tourio: feature %d has no geometry", i)
		case g.IsPoint():
			p, err := position(g.Point)
			if err != nil {
				return nil, errors.Wrapf(err, "tourio: feature %d", i)
			}
			pts = append(pts, p)
		case g.IsMultiPoint():
			for j, c := range g.MultiPoint {
				p, err := position(c)
				if err != nil {
					return nil, errors.Wrapf(err, "tourio: feature %d position %d", i, j)
				}
				pts = append(pts, p)
			}
		default:
			return nil, errors.Errorf("tourio: feature %d: unsupported geometry %s", i, g.Type)
		}
	}
	if len(pts) == 0 {
		return nil, ErrNoCities
	}

	return pts, nil
}

func position(c []float64) (r2.Point, error) {
	if len(c) < 2 {
		return r2.Point{}, errors.Errorf("position needs 2 coordinates, got %d", len(c))
	}
	if math.IsNaN(c[0]) || math.IsNaN(c[1]) || math.IsInf(c[0], 0) || math.IsInf(c[1], 0) {
		return r2.Point{}, errors.New("non-finite coordinate")
	}

	return r2.Point{X: c[0], Y: c[1]}, nil
}

// ReadCitiesFile opens path and parses it as GeoJSON when the extension is
// .geojson or .json, as CSV otherwise.
func ReadCitiesFile(path string) ([]r2.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "tourio: open %s", path)
	}
	defer f.Close()

	var pts []r2.Point
	switch strings.ToLower(filepath.Ext(path)) {
	case ".geojson", ".json":
		pts, err = ReadGeoJSON(f)
	default:
		pts, err = ReadCities(f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}

	return pts, nil
}
