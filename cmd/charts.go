package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/bonddash/charts"
	"github.com/google/subcommands"
)

// chartsCmd holds the flags for the 'charts' subcommand.
type chartsCmd struct {
	filterFlags
	outDir string
}

func (*chartsCmd) Name() string     { return "charts" }
func (*chartsCmd) Synopsis() string { return "render the selection as PNG charts" }
func (*chartsCmd) Usage() string {
	return `brd charts [-assets <ids>] [-from <date>] [-to <date>] [-out <dir>]

  Renders three PNG files into the output directory: the average-return bar
  chart, the risk-return scatter and the cumulative-return lines.
`
}

func (c *chartsCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.StringVar(&c.outDir, "out", ".", "Directory to write the PNG files into.")
}

func (c *chartsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	review, err := c.review()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	summary := review.Summary()
	returns, _ := review.Returns()

	renders := []struct {
		file   string
		render func() ([]byte, error)
	}{
		{"average_returns.png", func() ([]byte, error) { return charts.AverageReturnsBar(summary) }},
		{"risk_return.png", func() ([]byte, error) { return charts.RiskReturnScatter(summary) }},
		{"cumulative_returns.png", func() ([]byte, error) { return charts.CumulativeReturns(returns) }},
	}

	status := subcommands.ExitSuccess
	for _, r := range renders {
		img, err := r.render()
		if err != nil {
			// empty selections are an empty state, not a failure
			fmt.Fprintf(os.Stderr, "note: skipping %s: %v\n", r.file, err)
			continue
		}
		path := filepath.Join(c.outDir, r.file)
		if err := os.WriteFile(path, img, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Printf("wrote %s\n", path)
	}
	return status
}
