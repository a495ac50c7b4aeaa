package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tearsheet"
	"github.com/google/subcommands"
)

type fetchCmd struct {
	ticker string
	from   string
	to     string
	output string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "download a return series from EODHD" }
func (*fetchCmd) Usage() string {
	return `tear fetch -ticker <TICKER.EXCHANGE> [-from 2024-01-01] [-to 2024-12-31]

  Downloads adjusted close prices from eodhd.com, turns them into a
  daily return series and writes it as CSV. The API key is read from
  the ` + "`EODHD_API_KEY`" + ` environment variable or -eodhd-api-key.

Usage Examples:
# One year of Apple daily returns.
$ tear fetch -ticker AAPL.US -from 2024-01-01 -to 2024-12-31 > aapl.csv

`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "ticker", "", "Ticker to fetch, in EODHD TICKER.EXCHANGE form.")
	f.StringVar(&c.from, "from", "", "First date of the range (default one year ago).")
	f.StringVar(&c.to, "to", "", "Last date of the range (default today).")
	f.StringVar(&c.output, "o", "-", "Output CSV file, '-' for stdout.")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: fetch needs a -ticker")
		return subcommands.ExitUsageError
	}

	to := tearsheet.Today()
	from := to.Add(-365)
	var err error
	if c.from != "" {
		if from, err = tearsheet.ParseDate(c.from); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -from date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.to != "" {
		if to, err = tearsheet.ParseDate(c.to); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -to date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	returns, err := tearsheet.FetchReturns(c.ticker, tearsheet.NewRange(from, to))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching %q: %v\n", c.ticker, err)
		return subcommands.ExitFailure
	}

	if c.output == "-" {
		if err := tearsheet.WriteSeries(os.Stdout, returns); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing series: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	if err := tearsheet.WriteSeriesFile(c.output, returns); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "%d returns written to %s\n", returns.Len(), c.output)
	return subcommands.ExitSuccess
}
