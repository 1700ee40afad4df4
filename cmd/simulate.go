package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/etnz/montecarlo"
	"github.com/etnz/montecarlo/renderer"
	"github.com/google/subcommands"
)

// simulateCmd holds the flags for the 'simulate' subcommand.
type simulateCmd struct {
	paramFlags
	seed        int64
	interactive bool
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "run a simulation, report statistics, write all exports" }
func (*simulateCmd) Usage() string {
	return `mcs simulate [-s0 <price>] [-mu <return>] [-sigma <volatility>] [-years <horizon>] [-steps <n>] [-paths <n>] [-seed <n>] [-i]

  Simulates GBM price paths, prints the terminal-value statistics, and writes
  the paths table, the time grid, and the chart page into the output
  directory. With -i the six parameters are prompted for on standard input
  instead of being taken from flags.

Usage Examples:
# One year of daily steps, a thousand paths.
$ mcs simulate -s0 150 -sigma 0.25

# Reproducible run.
$ mcs simulate -seed 42

`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	c.paramFlags.SetFlags(f)
	f.Int64Var(&c.seed, "seed", 0, "Fixed random seed for a reproducible run; 0 seeds from system entropy")
	f.BoolVar(&c.interactive, "i", false, "Prompt for the simulation parameters interactively")
}

func (c *simulateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	params := c.Parameters()
	if c.interactive {
		p, err := promptParameters(os.Stdin, os.Stdout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading parameters: %v\n", err)
			return subcommands.ExitUsageError
		}
		params = p
	}

	if err := params.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid parameters:\n%v\n", err)
		return subcommands.ExitUsageError
	}

	rng := montecarlo.NewRand()
	if c.seed != 0 {
		rng = rand.New(rand.NewSource(c.seed))
	}

	start := time.Now()
	ensemble := montecarlo.Run(params, rng)
	elapsed := time.Since(start)

	summary := montecarlo.Summarize(ensemble)

	fmt.Printf("Simulation completed in %s.\n", elapsed)
	printMarkdown(renderer.SummaryMarkdown(params, summary))

	if err := writeResults(params, ensemble); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing results: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Results saved to %s, %s and %s in %q.\n", PathsFile, TimePointsFile, ChartFile, *outDir)

	return subcommands.ExitSuccess
}

// writeResults writes the three run artifacts into the output directory.
func writeResults(params montecarlo.Parameters, ensemble montecarlo.Ensemble) error {
	if err := writeArtifact(PathsFile, func(w io.Writer) error {
		return montecarlo.ExportPaths(w, params, ensemble)
	}); err != nil {
		return err
	}
	if err := writeArtifact(TimePointsFile, func(w io.Writer) error {
		return montecarlo.ExportTimePoints(w, params)
	}); err != nil {
		return err
	}
	return writeArtifact(ChartFile, func(w io.Writer) error {
		_, err := io.WriteString(w, renderer.ChartHTML(params, PathsFile))
		return err
	})
}
