package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tearsheet"
	"github.com/etnz/tearsheet/renderer"
	"github.com/google/subcommands"
)

type metricsCmd struct {
	seriesFlags
	title    string
	capital  float64
	currency string
}

func (*metricsCmd) Name() string     { return "metrics" }
func (*metricsCmd) Synopsis() string { return "compute the full tear sheet for a return series" }
func (*metricsCmd) Usage() string {
	return `tear metrics -input <returns.csv> [-benchmark <bench.csv>] [-rf 0.02]

  Computes every performance, risk, drawdown, tail and win/loss metric
  over the return series and prints the tear sheet. With a benchmark,
  adds a benchmark column and the alpha/beta section.

Usage Examples:
# Tear sheet of a strategy against SPY with a 2% risk-free rate.
$ tear metrics -input returns.csv -benchmark spy.csv -rf 0.02

`
}

func (c *metricsCmd) SetFlags(f *flag.FlagSet) {
	c.seriesFlags.register(f)
	f.StringVar(&c.title, "title", "Strategy Tearsheet", "Title of the report.")
	f.Float64Var(&c.capital, "capital", 10000, "Starting capital compounded through the series.")
	f.StringVar(&c.currency, "currency", "EUR", "Currency of the starting capital.")
}

func (c *metricsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.TearSheetMarkdown(ts))
	return subcommands.ExitSuccess
}
