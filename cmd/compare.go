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

type compareCmd struct {
	seriesFlags
	period string
}

func (*compareCmd) Name() string { return "compare" }
func (*compareCmd) Synopsis() string {
	return "compare a return series against a benchmark period by period"
}
func (*compareCmd) Usage() string {
	return `tear compare -input <returns.csv> -benchmark <bench.csv> [-period year]

  Aggregates both series per calendar period over the dates they share
  and prints them side by side, flagging the periods the strategy won.

`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	c.seriesFlags.register(f)
	f.StringVar(&c.period, "period", "year", "Aggregation period: day, week, month, quarter or year.")
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.benchmark == "" {
		fmt.Fprintln(os.Stderr, "Error: compare needs a -benchmark series")
		return subcommands.ExitUsageError
	}

	p, err := tearsheet.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	e, returns, benchmark, err := c.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	rows := e.Compare(returns, benchmark, p)
	title := fmt.Sprintf("Strategy vs Benchmark by %s", p.Name())
	printMarkdown(renderer.CompareMarkdown(title, rows))
	return subcommands.ExitSuccess
}
