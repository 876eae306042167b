package tourio

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// PrintTour writes a table of the tour: visiting order, city id, coordinates,
// leg length from the previous city and running total, closed by the leg
// back to the first city.
func PrintTour(w io.Writer, pts []r2.Point, tour []int) error {
	for _, id := range tour {
		if id < 0 || id >= len(pts) {
			return errors.Errorf("tourio: city %d out of range [0,%d)", id, len(pts))
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "step\tcity\tx\ty\tleg\ttotal\t")

	var total float64
	for i, id := range tour {
		var leg float64
		if i > 0 {
			leg = pts[id].Sub(pts[tour[i-1]]).Norm()
		}
		total += leg
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
			humanize.Ordinal(i+1),
			humanize.Comma(int64(id)),
			humanize.CommafWithDigits(pts[id].X, 2),
			humanize.CommafWithDigits(pts[id].Y, 2),
			humanize.CommafWithDigits(leg, 2),
			humanize.CommafWithDigits(total, 2),
		)
	}
	if len(tour) > 1 {
		back := pts[tour[0]].Sub(pts[tour[len(tour)-1]]).Norm()
		total += back
		fmt.Fprintf(tw, "%s\t%s\t\t\t%s\t%s\t\n",
			"return",
			humanize.Comma(int64(tour[0])),
			humanize.CommafWithDigits(back, 2),
			humanize.CommafWithDigits(total, 2),
		)
	}

	return errors.Wrap(tw.Flush(), "tourio: print tour")
}
