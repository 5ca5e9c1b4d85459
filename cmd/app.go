// Package cmd implements the CLI application driving the dashboard views.
package cmd

import (
	"flag"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/bonddash"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the application. A main package
// registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&overviewCmd{},
	&exploreCmd{},
	&analyticsCmd{},
	&chartsCmd{},
	&exportCmd{},
	&importKeyratesCmd{},
	&assistCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", ".", "Path to the directory holding the four market-data files")
var currency = flag.String("cur", "USD", "Display currency for asset prices")

// loadMarket is the central function to load the four input files.
func loadMarket() (*bonddash.MarketData, error) {
	return bonddash.Load(*dataDir, *currency)
}

// filterFlags holds the selection flags shared by the view subcommands.
type filterFlags struct {
	assets string
	from   string
	to     string
}

func (ff *filterFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&ff.assets, "assets", "", "Comma-separated asset identifiers to select. Empty selects all.")
	f.StringVar(&ff.from, "from", "", "Start of the date window (YYYY-MM-DD). Empty leaves it open.")
	f.StringVar(&ff.to, "to", "", "End of the date window (YYYY-MM-DD). Empty leaves it open.")
}

// review loads the market data and builds the review for the current
// selection.
func (ff *filterFlags) review() (*bonddash.Review, error) {
	md, err := loadMarket()
	if err != nil {
		return nil, err
	}
	window, err := bonddash.ParseRange(ff.from, ff.to)
	if err != nil {
		return nil, err
	}
	var assets []string
	if s := strings.TrimSpace(ff.assets); s != "" {
		for _, a := range strings.Split(s, ",") {
			assets = append(assets, strings.TrimSpace(a))
		}
	}
	return bonddash.NewReview(md, assets, window)
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(src string) {
	out, err := glamour.Render(src, "auto")
	if err != nil {
		// fall back to the raw markdown
		fmt.Print(src)
		return
	}
	fmt.Print(out)
}
