// Package renderer turns simulation results into their presentation forms:
// a markdown statistics report and the standalone HTML chart page.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/montecarlo"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the terminal-value statistics report to a markdown
// string: the six statistics, currency-formatted, under a parameter recap.
func SummaryMarkdown(p montecarlo.Parameters, s montecarlo.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Simulation Statistics (Final Stock Price)")
	doc.PlainText(fmt.Sprintf("%d paths of %d steps over %g years, starting at %s with return %s and volatility %s.",
		p.Paths, p.Steps, p.Years, montecarlo.USD(p.InitialPrice),
		montecarlo.Rate(p.Return), montecarlo.Rate(p.Volatility)))

	table := md.TableSet{
		Header: []string{"Statistic", "Value"},
		Rows: [][]string{
			{"Mean", montecarlo.USD(s.Mean).String()},
			{"Standard Deviation", montecarlo.USD(s.StdDev).String()},
			{"Minimum", montecarlo.USD(s.Min).String()},
			{"Maximum", montecarlo.USD(s.Max).String()},
			{"5th Percentile", montecarlo.USD(s.Percentile5).String()},
			{"95th Percentile", montecarlo.USD(s.Percentile95).String()},
		},
	}
	doc.Table(table)

	return doc.String()
}
