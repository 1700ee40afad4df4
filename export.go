package montecarlo

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// this file contains the flat tabular exports of a run.
// The layout is a stable output contract: the chart page parses these files
// back, so values are written in a form that round-trips exactly.

// ExportPaths writes the ensemble as a delimited table: row 0 is a header of
// the time grid prefixed by a "Path" label, then one row per trajectory
// labeled with its 1-based path index followed by steps+1 prices.
func ExportPaths(w io.Writer, p Parameters, e Ensemble) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, p.Steps+2)
	header = append(header, "Path")
	for _, t := range p.TimePoints() {
		header = append(header, formatValue(t))
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("cannot write paths header: %w", err)
	}

	for i, path := range e {
		row := make([]string, 0, len(path)+1)
		row = append(row, strconv.Itoa(i+1))
		for _, v := range path {
			row = append(row, formatValue(v))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write path %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportTimePoints writes the time grid alone, one value per line, steps+1
// lines total. It matches the paths header without the row-index column.
func ExportTimePoints(w io.Writer, p Parameters) error {
	for _, t := range p.TimePoints() {
		if _, err := fmt.Fprintln(w, formatValue(t)); err != nil {
			return fmt.Errorf("cannot write time point: %w", err)
		}
	}
	return nil
}

// formatValue renders a float in the shortest form that parses back to the
// exact same value.
func formatValue(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
