package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tearsheet"
	"github.com/etnz/tearsheet/charts"
	"github.com/etnz/tearsheet/renderer"
	"github.com/google/subcommands"
)

type htmlCmd struct {
	seriesFlags
	title    string
	capital  float64
	currency string
	output   string
	window   int
}

func (*htmlCmd) Name() string     { return "html" }
func (*htmlCmd) Synopsis() string { return "render the tear sheet as a self-contained HTML page" }
func (*htmlCmd) Usage() string {
	return `tear html -input <returns.csv> [-benchmark <bench.csv>] [-o report.html]

  Renders the full tear sheet, with the cumulative return, underwater,
  rolling and yearly charts embedded inline, into a single HTML file.

`
}

func (c *htmlCmd) SetFlags(f *flag.FlagSet) {
	c.seriesFlags.register(f)
	f.StringVar(&c.title, "title", "Strategy Tearsheet", "Title of the report.")
	f.Float64Var(&c.capital, "capital", 10000, "Starting capital compounded through the series.")
	f.StringVar(&c.currency, "currency", "EUR", "Currency of the starting capital.")
	f.StringVar(&c.output, "o", "tearsheet.html", "Output file, '-' for stdout.")
	f.IntVar(&c.window, "window", 126, "Window of the rolling charts, in periods.")
}

func (c *htmlCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, returns, benchmark, err := c.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	ts, err := e.NewTearSheet(c.title, returns, benchmark, tearsheet.M(c.capital, c.currency))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building tear sheet: %v\n", err)
		return subcommands.ExitFailure
	}

	// Charts that cannot render on this series are skipped, not fatal.
	var figures []renderer.Chart
	addChart := func(title string, img []byte, err error) {
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s chart: %v\n", title, err)
			return
		}
		figures = append(figures, renderer.Chart{Title: title, PNG: img})
	}
	img, err := charts.CumulativeReturns(e, returns, benchmark)
	addChart("Cumulative Returns", img, err)
	img, err = charts.Underwater(e, returns)
	addChart("Underwater", img, err)
	img, err = charts.RollingSharpe(e, returns, c.window)
	addChart("Rolling Sharpe", img, err)
	img, err = charts.RollingVolatility(e, returns, c.window)
	addChart("Rolling Volatility", img, err)
	img, err = charts.YearlyReturns(e, returns)
	addChart("Yearly Returns", img, err)

	page, err := renderer.TearSheetHTML(ts, figures)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering HTML: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.output == "-" {
		fmt.Print(page)
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.output, []byte(page), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Report written to %s\n", c.output)
	return subcommands.ExitSuccess
}
