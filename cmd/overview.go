package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bonddash/renderer"
	"github.com/google/subcommands"
)

// overviewCmd holds the flags for the 'overview' subcommand.
type overviewCmd struct {
	filterFlags
}

func (*overviewCmd) Name() string     { return "overview" }
func (*overviewCmd) Synopsis() string { return "display the headline metrics of the selection" }
func (*overviewCmd) Usage() string {
	return `brd overview [-assets <ids>] [-from <date>] [-to <date>]

  Displays the headline portfolio metrics: asset counts, data points,
  average return and volatility, risk level.
`
}

func (c *overviewCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *overviewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	review, err := c.review()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.OverviewMarkdown(review.Overview()))
	return subcommands.ExitSuccess
}
