// Package cmd implements the CLI application to analyze return series.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/tearsheet"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the tear application. A main
// package registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&metricsCmd{},
	&drawdownsCmd{},
	&compareCmd{},
	&htmlCmd{},
	&plotCmd{},
	&fetchCmd{},
	&topicCmd{},
	&assistCmd{},
}

// seriesFlags are the flags shared by every command that analyzes a
// return series.
type seriesFlags struct {
	input      string
	benchmark  string
	riskFree   float64
	periods    int
	confidence float64
}

func (s *seriesFlags) register(f *flag.FlagSet) {
	f.StringVar(&s.input, "input", "", "Path to the return series CSV file, '-' for stdin.")
	f.StringVar(&s.benchmark, "benchmark", "", "Path to the benchmark return series CSV file (optional).")
	f.Float64Var(&s.riskFree, "rf", 0, "Annualized risk-free rate (0.02 means 2%).")
	f.IntVar(&s.periods, "periods", 252, "Number of return periods per year.")
	f.Float64Var(&s.confidence, "confidence", 0.95, "Confidence level for VaR and tail metrics.")
}

// load builds the engine and reads the input and optional benchmark
// series.
func (s *seriesFlags) load() (*tearsheet.Engine, *tearsheet.Series, *tearsheet.Series, error) {
	if s.input == "" {
		return nil, nil, nil, fmt.Errorf("missing required -input flag")
	}

	cfg := tearsheet.DefaultConfig()
	cfg.RiskFree = s.riskFree
	cfg.Periods = s.periods
	cfg.Confidence = s.confidence
	e, err := tearsheet.New(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	var returns *tearsheet.Series
	if s.input == "-" {
		returns, err = tearsheet.ReadSeries(os.Stdin)
	} else {
		returns, err = tearsheet.ReadSeriesFile(s.input)
	}
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not read return series: %w", err)
	}

	var benchmark *tearsheet.Series
	if s.benchmark != "" {
		benchmark, err = tearsheet.ReadSeriesFile(s.benchmark)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("could not read benchmark series: %w", err)
		}
	}
	return e, returns, benchmark, nil
}

// printMarkdown renders markdown for the terminal, falling back to the
// raw text when the terminal cannot be styled.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
