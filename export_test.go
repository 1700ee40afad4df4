package montecarlo

import (
	"encoding/csv"
	"strconv"
	"strings"
	"testing"
)

func TestExportPaths_Layout(t *testing.T) {
	p := Parameters{InitialPrice: 100, Return: 0.08, Volatility: 0, Years: 1, Steps: 2, Paths: 2}
	e := Ensemble{
		Trajectory{100, 101, 102},
		Trajectory{100, 99, 98},
	}

	var b strings.Builder
	if err := ExportPaths(&b, p, e); err != nil {
		t.Fatalf("ExportPaths() error = %v", err)
	}

	want := "Path,0,0.5,1\n1,100,101,102\n2,100,99,98\n"
	if b.String() != want {
		t.Errorf("ExportPaths() =\n%q\nwant\n%q", b.String(), want)
	}
}

func TestExportPaths_RowAndColumnCounts(t *testing.T) {
	p := validParams()
	p.Steps = 5
	p.Paths = 7
	e := Run(p, NewRand())

	var b strings.Builder
	if err := ExportPaths(&b, p, e); err != nil {
		t.Fatalf("ExportPaths() error = %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(b.String())).ReadAll()
	if err != nil {
		t.Fatalf("exported table does not parse as CSV: %v", err)
	}
	if len(records) != p.Paths+1 {
		t.Fatalf("table has %d rows, want %d (header + one per path)", len(records), p.Paths+1)
	}
	for i, rec := range records {
		if len(rec) != p.Steps+2 {
			t.Errorf("row %d has %d columns, want %d", i, len(rec), p.Steps+2)
		}
	}
	if records[0][0] != "Path" {
		t.Errorf("header label = %q, want %q", records[0][0], "Path")
	}
	if records[1][0] != "1" {
		t.Errorf("first path label = %q, want %q (1-based index)", records[1][0], "1")
	}
}

func TestExportTimePoints_RoundTrip(t *testing.T) {
	p := validParams()
	p.Years = 1.5
	p.Steps = 7

	var b strings.Builder
	if err := ExportTimePoints(&b, p); err != nil {
		t.Fatalf("ExportTimePoints() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != p.Steps+1 {
		t.Fatalf("export has %d lines, want %d", len(lines), p.Steps+1)
	}

	// Re-deriving the grid independently must match every written value exactly.
	for i, want := range p.TimePoints() {
		got, err := strconv.ParseFloat(lines[i], 64)
		if err != nil {
			t.Fatalf("line %d %q does not parse: %v", i, lines[i], err)
		}
		if got != want {
			t.Errorf("line %d = %v, want exactly %v", i, got, want)
		}
	}
}

func TestExportsShareTheTimeGrid(t *testing.T) {
	p := validParams()
	p.Steps = 4
	e := Run(p, NewRand())

	var paths, times strings.Builder
	if err := ExportPaths(&paths, p, e); err != nil {
		t.Fatalf("ExportPaths() error = %v", err)
	}
	if err := ExportTimePoints(&times, p); err != nil {
		t.Fatalf("ExportTimePoints() error = %v", err)
	}

	header := strings.Split(strings.SplitN(paths.String(), "\n", 2)[0], ",")[1:]
	grid := strings.Split(strings.TrimRight(times.String(), "\n"), "\n")
	if len(header) != len(grid) {
		t.Fatalf("header has %d time values, time export has %d", len(header), len(grid))
	}
	for i := range grid {
		if header[i] != grid[i] {
			t.Errorf("time %d: header %q != time export %q", i, header[i], grid[i])
		}
	}
}
