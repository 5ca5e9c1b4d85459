package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bonddash"
	"github.com/etnz/bonddash/renderer"
	"github.com/google/subcommands"
)

// analyticsCmd holds the flags for the 'analytics' subcommand.
type analyticsCmd struct {
	filterFlags
}

func (*analyticsCmd) Name() string     { return "analytics" }
func (*analyticsCmd) Synopsis() string { return "display summary statistics, correlations and risk metrics" }
func (*analyticsCmd) Usage() string {
	return `brd analytics [-assets <ids>] [-from <date>] [-to <date>]

  Displays the per-asset summary statistics, the asset correlation matrix
  and the portfolio risk metrics for the selection.
`
}

func (c *analyticsCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *analyticsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	review, err := c.review()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.AnalyticsMarkdown(review.Summary()))

	// The factor matrix is only built to surface alignment problems here;
	// an empty intersection empties the view without failing the session.
	returns, _ := review.Returns()
	krChanges, _ := review.KeyRateChanges(false)
	if _, err := bonddash.BuildRiskFactors(krChanges, returns); err != nil {
		var alignment *bonddash.AlignmentError
		if errors.As(err, &alignment) {
			fmt.Fprintf(os.Stderr, "note: risk factors unavailable: %v\n", alignment)
			return subcommands.ExitSuccess
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
