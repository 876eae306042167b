package tourio

import (
	"bufio"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// tourHeader is the first line of a tour file.
const tourHeader = "index"

// WriteTour writes the "index" header and then one city id per line.
func WriteTour(w io.Writer, tour []int) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(tourHeader + "\n"); err != nil {
		return errors.Wrap(err, "tourio: write tour")
	}

	var buf []byte
	for _, id := range tour {
		buf = strconv.AppendInt(buf[:0], int64(id), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return errors.Wrap(err, "tourio: write tour")
		}
	}

	return errors.Wrap(bw.Flush(), "tourio: write tour")
}

// ReadTour reads a file produced by WriteTour. The header is optional;
// blank lines are ignored.
func ReadTour(r io.Reader) ([]int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 1
	cr.TrimLeadingSpace = true

	var tour []int
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "tourio: read tour")
		}
		field := strings.TrimSpace(rec[0])
		line, _ := cr.FieldPos(0)
		if line == 1 && field == tourHeader {
			continue
		}
		id, err := strconv.Atoi(field)
		if err != nil || id < 0 {
			return nil, errors.Errorf("tourio: line %d: invalid city id %q", line, field)
		}
		tour = append(tour, id)
	}

	return tour, nil
}
