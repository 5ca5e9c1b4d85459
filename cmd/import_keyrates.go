package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bonddash/treasury"
	"github.com/google/subcommands"
)

// importKeyratesCmd holds the flags for the 'import-keyrates' subcommand.
type importKeyratesCmd struct {
	inputFile  string
	url        string
	outputFile string
}

func (*importKeyratesCmd) Name() string { return "import-keyrates" }
func (*importKeyratesCmd) Synopsis() string {
	return "convert a par-yield JSON feed document into the key-rate input format"
}
func (*importKeyratesCmd) Usage() string {
	return `brd import-keyrates [-in <file> | -url <address>] [-out <file>]

  Reads a par-yield JSON feed document (fiscal-data style) from a file or
  an address and writes it in the keyrates.csv input format, rates left in
  percent.
`
}

func (c *importKeyratesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputFile, "in", "", "Par-yield JSON document to read. Empty reads stdin unless -url is set.")
	f.StringVar(&c.url, "url", "", "Address of the par-yield feed. Responses are cached on disk for the day.")
	f.StringVar(&c.outputFile, "out", "", "Output file. Empty writes to stdout.")
}

func (c *importKeyratesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var rows []treasury.Row
	var err error
	switch {
	case c.url != "":
		rows, err = treasury.Fetch(c.url)
	case c.inputFile != "":
		var in *os.File
		in, err = os.Open(c.inputFile)
		if err == nil {
			rows, err = treasury.Decode(in)
			in.Close()
		}
	default:
		rows, err = treasury.Decode(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading par-yield document: %v\n", err)
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
	if err := treasury.WriteCSV(out, rows); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing key rates: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.outputFile != "" {
		fmt.Printf("wrote %s\n", c.outputFile)
	}
	return subcommands.ExitSuccess
}
