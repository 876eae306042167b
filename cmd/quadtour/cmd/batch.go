package cmd

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/quadtour/tourio"
)

func newBatchCmd(e *env) *cobra.Command {
	c := &cobra.Command{
		Use:   "batch",
		Short: "Solve a numbered series of instances concurrently",
		Long: `
Solves instances 0..count-1. Instance i is read from input_pattern and its tour
written to output_pattern, both formatted with i (e.g. input_%d.csv).`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return e.runBatch(c.Context())
		},
	}

	f := c.Flags()
	f.Int("count", 1, "Number of instances.")
	f.String("input_pattern", "input_%d.csv", "Input file name pattern.")
	f.String("output_pattern", "solution_%d.csv", "Tour file name pattern.")
	f.String("geojson_pattern", "", "Optional GeoJSON file name pattern.")
	f.Int("jobs", 0, "Instances solved at once; 0 means GOMAXPROCS.")
	f.String("report", "", "Write one YAML report document per instance to this file.")

	return c
}

func (e *env) runBatch(ctx context.Context) error {
	opts, err := solverOptions(e.conf, e.log)
	if err != nil {
		return err
	}

	count := e.conf.GetInt("count")
	if count < 1 {
		return errors.Errorf("count must be positive, got %d", count)
	}
	jobs := e.conf.GetInt("jobs")
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	inPat := e.conf.GetString("input_pattern")
	outPat := e.conf.GetString("output_pattern")
	gjPat := e.conf.GetString("geojson_pattern")

	e.log.Info("batch started",
		zap.String("instances", humanize.Comma(int64(count))),
		zap.Int("jobs", jobs),
		zap.Stringer("algo", opts.Algo),
	)

	reps := make([]tourio.Report, count)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i := 0; i < count; i++ {
		job := solveJob{
			input:  fmt.Sprintf(inPat, i),
			output: fmt.Sprintf(outPat, i),
		}
		if gjPat != "" {
			job.geojson = fmt.Sprintf(gjPat, i)
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rep, err := job.run(gctx, opts, e.log)
			if err != nil {
				return errors.Wrapf(err, "instance %d", i)
			}
			reps[i] = rep

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var total float64
	for _, r := range reps {
		total += r.Cost
	}
	e.log.Info("batch done",
		zap.String("instances", humanize.Comma(int64(count))),
		zap.String("total_cost", humanize.CommafWithDigits(total, 3)),
	)

	if path := e.conf.GetString("report"); path != "" {
		return writeFile(path, func(w io.Writer) error { return tourio.WriteReports(w, reps...) })
	}

	return nil
}
