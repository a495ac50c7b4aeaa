package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/tearsheet"
	"github.com/etnz/tearsheet/agent"
	"github.com/etnz/tearsheet/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct {
	seriesFlags
	title string
}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "start an interactive AI session about a tear sheet"
}
func (*assistCmd) Usage() string {
	return `tear assist -input <returns.csv> [-benchmark <bench.csv>] [question...]

  Computes the tear sheet and starts an interactive session with an AI
  assistant that has the report in context. Needs Gemini credentials in
  the environment.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	c.seriesFlags.register(f)
	f.StringVar(&c.title, "title", "Strategy Tearsheet", "Title of the report.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	e, returns, benchmark, err := c.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	ts, err := e.NewTearSheet(c.title, returns, benchmark, tearsheet.M(10000, "EUR"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building tear sheet: %v\n", err)
		return subcommands.ExitFailure
	}
	report := renderer.TearSheetMarkdown(ts)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin, report, agent.NewAnalyst())
	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
