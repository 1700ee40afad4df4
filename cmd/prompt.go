package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/montecarlo"
)

// promptParameters asks for the six simulation parameters line by line.
// Every answer is parsed and rejected immediately on malformed input; range
// checks stay with Parameters.Validate at the boundary.
func promptParameters(r io.Reader, w io.Writer) (montecarlo.Parameters, error) {
	scanner := bufio.NewScanner(r)

	readFloat := func(prompt, field string) (float64, error) {
		fmt.Fprint(w, prompt)
		if !scanner.Scan() {
			return 0, fmt.Errorf("no input for %s", field)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(scanner.Text()), 64)
		if err != nil {
			return 0, fmt.Errorf("%s: %q is not a number", field, strings.TrimSpace(scanner.Text()))
		}
		return v, nil
	}
	readInt := func(prompt, field string) (int, error) {
		fmt.Fprint(w, prompt)
		if !scanner.Scan() {
			return 0, fmt.Errorf("no input for %s", field)
		}
		v, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			return 0, fmt.Errorf("%s: %q is not an integer", field, strings.TrimSpace(scanner.Text()))
		}
		return v, nil
	}

	var p montecarlo.Parameters
	var err error
	if p.InitialPrice, err = readFloat("Enter initial stock price ($): ", "initial price"); err != nil {
		return p, err
	}
	if p.Return, err = readFloat("Enter expected annual return (as decimal, e.g., 0.08 for 8%): ", "expected return"); err != nil {
		return p, err
	}
	if p.Volatility, err = readFloat("Enter annual volatility (as decimal, e.g., 0.20 for 20%): ", "volatility"); err != nil {
		return p, err
	}
	if p.Years, err = readFloat("Enter time period (in years): ", "time period"); err != nil {
		return p, err
	}
	if p.Steps, err = readInt("Enter number of time steps: ", "time steps"); err != nil {
		return p, err
	}
	if p.Paths, err = readInt("Enter number of simulation paths: ", "simulation paths"); err != nil {
		return p, err
	}
	return p, nil
}
