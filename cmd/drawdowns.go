package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tearsheet/renderer"
	"github.com/google/subcommands"
)

type drawdownsCmd struct {
	seriesFlags
	top int
}

func (*drawdownsCmd) Name() string     { return "drawdowns" }
func (*drawdownsCmd) Synopsis() string { return "list the worst drawdown episodes of a return series" }
func (*drawdownsCmd) Usage() string {
	return `tear drawdowns -input <returns.csv> [-top 10]

  Segments the series into drawdown episodes and prints the deepest
  ones with their start, valley, recovery date and depth.

`
}

func (c *drawdownsCmd) SetFlags(f *flag.FlagSet) {
	c.seriesFlags.register(f)
	f.IntVar(&c.top, "top", 10, "Number of episodes to show.")
}

func (c *drawdownsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, returns, _, err := c.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	episodes := e.TopDrawdowns(returns, c.top)
	printMarkdown(renderer.DrawdownsMarkdown("Worst Drawdowns", episodes))
	return subcommands.ExitSuccess
}
