// Package cmd implements the mcs command-line application.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&simulateCmd{}, "simulation")
	c.Register(&exportCmd{}, "simulation")
	c.Register(&chartCmd{}, "simulation")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var outDir = flag.String("out", ".", "Directory where result files are written")

// Artifact names are part of the output contract: the chart page fetches the
// paths file by this exact name.
const (
	PathsFile      = "stock_price_paths.csv"
	TimePointsFile = "time_points.csv"
	ChartFile      = "stock_price_plot.html"
)

// writeArtifact creates one result file in the output directory and hands it
// to 'write'.
func writeArtifact(name string, write func(io.Writer) error) error {
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("cannot create output directory %q: %w", *outDir, err)
	}
	path := filepath.Join(*outDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", path, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	return nil
}

// printMarkdown renders a markdown document to the terminal.
func printMarkdown(doc string) {
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		// fall back on the raw markdown
		fmt.Println(doc)
		return
	}
	fmt.Print(out)
}
