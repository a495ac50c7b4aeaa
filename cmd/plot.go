package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tearsheet/charts"
	"github.com/google/subcommands"
)

type plotCmd struct {
	seriesFlags
	chart  string
	window int
	output string
}

func (*plotCmd) Name() string     { return "plot" }
func (*plotCmd) Synopsis() string { return "render one tear sheet chart to a PNG file" }
func (*plotCmd) Usage() string {
	return `tear plot -input <returns.csv> -chart <name> [-o chart.png]

  Renders a single chart. Available charts:
    cumulative    compounded wealth curve, with -benchmark overlay
    underwater    drawdown series
    sharpe        rolling Sharpe ratio over -window periods
    volatility    rolling annualized volatility over -window periods
    yearly        one bar per calendar year

`
}

func (c *plotCmd) SetFlags(f *flag.FlagSet) {
	c.seriesFlags.register(f)
	f.StringVar(&c.chart, "chart", "cumulative", "Chart to render: cumulative, underwater, sharpe, volatility or yearly.")
	f.IntVar(&c.window, "window", 126, "Window of the rolling charts, in periods.")
	f.StringVar(&c.output, "o", "chart.png", "Output PNG file.")
}

func (c *plotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, returns, benchmark, err := c.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var img []byte
	switch c.chart {
	case "cumulative":
		img, err = charts.CumulativeReturns(e, returns, benchmark)
	case "underwater":
		img, err = charts.Underwater(e, returns)
	case "sharpe":
		img, err = charts.RollingSharpe(e, returns, c.window)
	case "volatility":
		img, err = charts.RollingVolatility(e, returns, c.window)
	case "yearly":
		img, err = charts.YearlyReturns(e, returns)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown chart %q\n", c.chart)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering %s chart: %v\n", c.chart, err)
		return subcommands.ExitFailure
	}

	if err := os.WriteFile(c.output, img, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Chart written to %s\n", c.output)
	return subcommands.ExitSuccess
}
