// Command brd is the bond portfolio risk dashboard.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/bonddash/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion installs shell completion; it is a no-op outside of a
// completion request.
func completion() {
	filters := map[string]complete.Predictor{
		"assets": predict.Nothing,
		"from":   predict.Nothing,
		"to":     predict.Nothing,
	}
	brd := &complete.Command{
		Flags: map[string]complete.Predictor{
			"data": predict.Dirs("*"),
			"cur":  predict.Set{"USD", "EUR", "GBP", "JPY"},
		},
		Sub: map[string]*complete.Command{
			"overview":  {Flags: filters},
			"explore":   {Flags: filters},
			"analytics": {Flags: filters},
			"charts":    {Flags: filters},
			"export":    {Flags: filters},
			"import-keyrates": {Flags: map[string]complete.Predictor{
				"in":  predict.Files("*.json"),
				"out": predict.Files("*.csv"),
			}},
			"assist": {Flags: filters},
			"topic": {
				Flags: map[string]complete.Predictor{"list": predict.Nothing},
				Args:  predict.Set{"readme", "data-formats", "views", "risk-model"},
			},
		},
	}
	brd.Complete("brd")
}
