package tourio

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/quadtour/quadrant"
	"github.com/katalvlaran/quadtour/tsp"
)

// Report is the YAML summary of one solve.
type Report struct {
	Input         string            `yaml:"input"`
	Cities        int               `yaml:"cities"`
	Algorithm     string            `yaml:"algorithm"`
	Cost          float64           `yaml:"cost"`
	InitialCost   float64           `yaml:"initial_cost"`
	LowerBound    float64           `yaml:"lower_bound"`
	Gap           float64           `yaml:"gap"` // Cost/LowerBound - 1
	Moves         int               `yaml:"moves"`
	Crossings     int               `yaml:"crossings"`
	QuadrantSizes []int             `yaml:"quadrant_sizes,omitempty"`
	Anchors       *quadrant.Anchors `yaml:"anchors,omitempty"`
	Fallback      bool              `yaml:"fallback,omitempty"`
	BestStart     *int              `yaml:"best_start,omitempty"`
	TimedOut      bool              `yaml:"timed_out"`
	Elapsed       string            `yaml:"elapsed"`
}

// NewReport summarises res for the named input.
func NewReport(input string, res tsp.TSResult) Report {
	st := res.Stats
	rep := Report{
		Input:       input,
		Cities:      len(res.Tour),
		Algorithm:   st.Algo.String(),
		Cost:        res.Cost,
		InitialCost: st.InitialCost,
		LowerBound:  st.LowerBound,
		Moves:       st.Moves,
		Crossings:   st.Crossings,
		Fallback:    st.Fallback,
		TimedOut:    st.TimedOut,
		Elapsed:     st.Elapsed.String(),
	}
	if st.LowerBound > 0 {
		rep.Gap = res.Cost/st.LowerBound - 1
	}

	switch st.Algo {
	case tsp.Segmented:
		if !st.Fallback {
			anchors := st.Anchors
			rep.Anchors = &anchors
		}
		if st.QuadrantSizes != [4]int{} {
			rep.QuadrantSizes = st.QuadrantSizes[:]
		}
	case tsp.MultiStart:
		start := st.BestStart
		rep.BestStart = &start
	}

	return rep
}

// WriteReport encodes rep as a YAML document.
func WriteReport(w io.Writer, rep Report) error {
	return WriteReports(w, rep)
}

// WriteReports encodes each report as its own document of one YAML stream.
func WriteReports(w io.Writer, reps ...Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for i := range reps {
		if err := enc.Encode(reps[i]); err != nil {
			return errors.Wrapf(err, "tourio: encode report %d", i)
		}
	}

	return errors.Wrap(enc.Close(), "tourio: encode report")
}

// ReadReport decodes the first document written by WriteReport.
func ReadReport(r io.Reader) (Report, error) {
	var rep Report
	if err := yaml.NewDecoder(r).Decode(&rep); err != nil {
		return Report{}, errors.Wrap(err, "tourio: decode report")
	}

	return rep, nil
}

// ReadReports decodes every document of a stream written by WriteReports.
func ReadReports(r io.Reader) ([]Report, error) {
	dec := yaml.NewDecoder(r)
	var reps []Report
	for {
		var rep Report
		err := dec.Decode(&rep)
		if err == io.EOF {
			return reps, nil
		}
		if err != nil {
			return nil, errors.Wrapf(err, "tourio: decode report %d", len(reps))
		}
		reps = append(reps, rep)
	}
}
