package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/montecarlo/renderer"
	"github.com/google/subcommands"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	paramFlags
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "write only the HTML chart page" }
func (*chartCmd) Usage() string {
	return `mcs chart [-s0 <price>] [-mu <return>] [-sigma <volatility>] [-years <horizon>] [-paths <n>]

  Writes the standalone chart page for the given parameters. The page loads
  stock_price_paths.csv from its own directory, so run 'export' or
  'simulate' with the same parameters first.

`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	c.paramFlags.SetFlags(f)
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	params := c.Parameters()
	if err := params.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid parameters:\n%v\n", err)
		return subcommands.ExitUsageError
	}

	err := writeArtifact(ChartFile, func(w io.Writer) error {
		_, err := io.WriteString(w, renderer.ChartHTML(params, PathsFile))
		return err
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing chart: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("HTML plot file generated: %s. Open it in a web browser to view the simulation paths.\n", ChartFile)
	return subcommands.ExitSuccess
}
