package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/fintrack/fintrack/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI surface for shell completion. Complete() takes
// over and exits when the shell is asking for completions.
func completion() {
	record := map[string]complete.Predictor{
		"d":  predict.Something,
		"a":  predict.Something,
		"c":  predict.Something,
		"on": predict.Something,
		"id": predict.Something,
	}
	comp := &complete.Command{
		Flags: map[string]complete.Predictor{
			"data-dir": predict.Dirs("*"),
		},
		Sub: map[string]*complete.Command{
			"add":    {Flags: record},
			"edit":   {Flags: record},
			"delete": {Flags: record},
			"show":   {Flags: record},
			"list": {Flags: map[string]complete.Predictor{
				"sort": predict.Set{"date-asc", "date-desc", "amount-asc", "amount-desc", "description-asc", "description-desc"},
				"c":    predict.Something,
			}},
			"report": {},
			"settings": {Flags: map[string]complete.Predictor{
				"currency": predict.Something,
				"budget":   predict.Something,
				"rate":     predict.Something,
			}},
			"import": {Flags: map[string]complete.Predictor{
				"f": predict.Files("*.json"),
			}},
			"export": {Flags: map[string]complete.Predictor{
				"format": predict.Set{"json", "csv"},
				"o":      predict.Files("*"),
			}},
			"interest": {Flags: map[string]complete.Predictor{
				"p": predict.Something,
				"r": predict.Something,
				"y": predict.Something,
			}},
			"game": {},
		},
	}
	comp.Complete("ft")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
