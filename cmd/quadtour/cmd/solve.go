package cmd

import (
	"context"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/quadtour/tourio"
	"github.com/katalvlaran/quadtour/tsp"
)

func newSolveCmd(e *env) *cobra.Command {
	c := &cobra.Command{
		Use:   "solve <cities.csv|cities.geojson>",
		Short: "Solve one instance",
		Long: `
Reads the cities, computes a tour and writes it as one city id per line after
an "index" header, to --output or standard output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return e.runSolve(c.Context(), args[0])
		},
	}

	f := c.Flags()
	f.StringP("output", "o", "", "Tour file; empty writes to standard output.")
	f.String("geojson", "", "Also write the tour and cities as a GeoJSON FeatureCollection.")
	f.String("report", "", "Also write a YAML run report.")
	f.Bool("print", false, "Print a step-by-step table of the tour to standard output.")

	return c
}

func (e *env) runSolve(ctx context.Context, input string) error {
	opts, err := solverOptions(e.conf, e.log)
	if err != nil {
		return err
	}

	job := solveJob{
		input:   input,
		output:  e.conf.GetString("output"),
		geojson: e.conf.GetString("geojson"),
	}
	if e.conf.GetBool("print") {
		job.print = e.out
	}
	if job.output == "" {
		job.stdout = e.out
	}

	rep, err := job.run(ctx, opts, e.log)
	if err != nil {
		return err
	}

	if path := e.conf.GetString("report"); path != "" {
		return writeFile(path, func(w io.Writer) error { return tourio.WriteReport(w, rep) })
	}

	return nil
}

// solveJob is one input file and the places its results go.
type solveJob struct {
	input   string
	output  string
	geojson string
	stdout  io.Writer // tour destination when output is empty
	print   io.Writer // tour table destination, nil to skip
}

func (j solveJob) run(ctx context.Context, opts tsp.Options, log *zap.Logger) (tourio.Report, error) {
	pts, err := tourio.ReadCitiesFile(j.input)
	if err != nil {
		return tourio.Report{}, err
	}

	res, err := tsp.Solve(ctx, pts, opts)
	if err != nil {
		return tourio.Report{}, errors.Wrapf(err, "solve %s", j.input)
	}
	rep := tourio.NewReport(j.input, res)

	log.Info("solved",
		zap.String("input", j.input),
		zap.String("cities", humanize.Comma(int64(len(pts)))),
		zap.Stringer("algo", res.Stats.Algo),
		zap.Float64("cost", res.Cost),
		zap.String("gap", humanize.FormatFloat("#.##", rep.Gap*100)+"%"),
		zap.Int("crossings", res.Stats.Crossings),
		zap.Bool("timed_out", res.Stats.TimedOut),
		zap.Duration("elapsed", res.Stats.Elapsed),
	)

	if err := j.write(pts, res); err != nil {
		return tourio.Report{}, err
	}

	return rep, nil
}

func (j solveJob) write(pts []r2.Point, res tsp.TSResult) error {
	writeTour := func(w io.Writer) error { return tourio.WriteTour(w, res.Tour) }
	if j.output == "" {
		if err := writeTour(j.stdout); err != nil {
			return err
		}
	} else if err := writeFile(j.output, writeTour); err != nil {
		return err
	}

	if j.geojson != "" {
		props := map[string]interface{}{
			"algorithm": res.Stats.Algo.String(),
			"cost":      res.Cost,
			"cities":    len(res.Tour),
		}
		err := writeFile(j.geojson, func(w io.Writer) error {
			return tourio.WriteGeoJSON(w, pts, res.Tour, props)
		})
		if err != nil {
			return err
		}
	}

	if j.print != nil {
		return tourio.PrintTour(j.print, pts, res.Tour)
	}

	return nil
}

// writeFile creates path and hands it to fn, reporting the first error of
// fn or Close.
func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()

	return errors.Wrapf(fn(f), "write %s", path)
}
