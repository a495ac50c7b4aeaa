// Command tear computes portfolio performance and risk statistics from
// daily return series and assembles them into tear sheet reports.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/tearsheet/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Handles shell completion requests and exits, a no-op otherwise.
	completion().Complete("tear")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion declares the command tree for shell completion.
func completion() *complete.Command {
	csv := predict.Files("*.csv")
	series := map[string]complete.Predictor{
		"input":      csv,
		"benchmark":  csv,
		"rf":         predict.Something,
		"periods":    predict.Something,
		"confidence": predict.Something,
	}
	withSeries := func(extra map[string]complete.Predictor) map[string]complete.Predictor {
		flags := map[string]complete.Predictor{}
		for k, v := range series {
			flags[k] = v
		}
		for k, v := range extra {
			flags[k] = v
		}
		return flags
	}

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"metrics": {Flags: withSeries(map[string]complete.Predictor{
				"title":    predict.Something,
				"capital":  predict.Something,
				"currency": predict.Something,
			})},
			"drawdowns": {Flags: withSeries(map[string]complete.Predictor{
				"top": predict.Something,
			})},
			"compare": {Flags: withSeries(map[string]complete.Predictor{
				"period": predict.Set{"day", "week", "month", "quarter", "year"},
			})},
			"html": {Flags: withSeries(map[string]complete.Predictor{
				"title":    predict.Something,
				"capital":  predict.Something,
				"currency": predict.Something,
				"o":        predict.Files("*.html"),
				"window":   predict.Something,
			})},
			"plot": {Flags: withSeries(map[string]complete.Predictor{
				"chart":  predict.Set{"cumulative", "underwater", "sharpe", "volatility", "yearly"},
				"window": predict.Something,
				"o":      predict.Files("*.png"),
			})},
			"fetch": {Flags: map[string]complete.Predictor{
				"ticker": predict.Something,
				"from":   predict.Something,
				"to":     predict.Something,
				"o":      csv,
			}},
			"topic": {Args: predict.Set{"readme", "metrics", "tearsheet", "data", "*"}},
			"assist": {Flags: withSeries(map[string]complete.Predictor{
				"title": predict.Something,
			})},
		},
	}
}
