package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	filterFlags
	outputFile string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the filtered asset returns as CSV" }
func (*exportCmd) Usage() string {
	return `brd export [-assets <ids>] [-from <date>] [-to <date>] [-o <file>]

  Serializes the filtered return table as CSV: the date column first, then
  the selected asset columns in their source order. Writes to stdout by
  default.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.StringVar(&c.outputFile, "o", "", "Output file. Empty writes to stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	review, err := c.review()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	out := os.Stdout
	if c.outputFile != "" {
		out, err = os.Create(c.outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.outputFile, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}

	if err := review.WriteCSV(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting returns: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.outputFile != "" {
		fmt.Printf("wrote %s\n", c.outputFile)
	}
	return subcommands.ExitSuccess
}
