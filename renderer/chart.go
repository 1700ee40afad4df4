package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/montecarlo"
)

//go:embed templates/*.tmpl
var templates embed.FS

// chartData is the view model of the chart page template.
type chartData struct {
	InitialPrice string
	Return       string
	Volatility   string
	Years        float64
	Paths        int
	MaxShown     int // the page plots at most this many paths
	PathsFile    string
}

// ChartHTML renders the standalone Chart.js page that loads the paths export
// named pathsFile (relative to the page itself) and plots the trajectories.
func ChartHTML(p montecarlo.Parameters, pathsFile string) string {
	data := chartData{
		InitialPrice: montecarlo.USD(p.InitialPrice).String(),
		Return:       montecarlo.Rate(p.Return).String(),
		Volatility:   montecarlo.Rate(p.Volatility).String(),
		Years:        p.Years,
		Paths:        p.Paths,
		MaxShown:     20,
		PathsFile:    pathsFile,
	}
	return renderTemplate("chart", "templates/chart.html.tmpl", data)
}

// renderTemplate is a small utility to render one embedded template.
func renderTemplate(name, file string, data any) string {
	content, err := fs.ReadFile(templates, file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}
	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", name, err)
	}
	return b.String()
}
