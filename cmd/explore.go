package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/bonddash"
	"github.com/etnz/bonddash/renderer"
	"github.com/google/subcommands"
)

// exploreCmd holds the flags for the 'explore' subcommand.
type exploreCmd struct {
	filterFlags
	head int
	abs  bool
}

func (*exploreCmd) Name() string     { return "explore" }
func (*exploreCmd) Synopsis() string { return "browse the loaded and derived tables" }
func (*exploreCmd) Usage() string {
	return `brd explore [-assets <ids>] [-from <date>] [-to <date>] [-n <rows>] [-abs]

  Displays the head of the key-rate changes, the filtered asset returns,
  the per-asset sensitivities and loadings, and the latest prices.
  -abs switches the key-rate view from fractional to absolute changes.
`
}

func (c *exploreCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.IntVar(&c.head, "n", 15, "Number of rows to display per table.")
	f.BoolVar(&c.abs, "abs", false, "Show absolute key-rate changes instead of fractional ones.")
}

func (c *exploreCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	review, err := c.review()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var b strings.Builder

	krChanges, krWarnings := review.KeyRateChanges(c.abs)
	if c.abs {
		b.WriteString(renderer.NumTableMarkdown("Key Rate Changes (absolute)", krChanges.Head(c.head)))
	} else {
		b.WriteString(renderer.TableMarkdown("Key Rate Changes", krChanges.Head(c.head)))
	}

	returns, retWarnings := review.Returns()
	b.WriteString(renderer.TableMarkdown("Asset Returns", returns.Head(c.head)))

	loadings, skipped := bonddash.BuildLoadings(review.Market())
	b.WriteString(renderer.SensitivitiesMarkdown(review.Market(), loadings, skipped))

	b.WriteString(renderer.PricesMarkdown(review.Market(), review.Assets()))

	printMarkdown(b.String())

	for _, w := range append(krWarnings, retWarnings...) {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	return subcommands.ExitSuccess
}
