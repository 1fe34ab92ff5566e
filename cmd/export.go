package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fintrack/fintrack"
	"github.com/google/subcommands"
)

type exportCmd struct {
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the collection to a JSON or CSV file" }
func (*exportCmd) Usage() string {
	return `export [-format json|csv] [-o <file>]

  Writes every record to the given file, or to stdout when -o is omitted.
  The JSON output round-trips through import.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "json", "Output format, json or csv")
	f.StringVar(&c.output, "o", "", "Output file, stdout when omitted")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var out io.Writer = os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating export file %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		out = file
	}

	ledger := OpenLedger()
	records := ledger.List("")

	var err error
	switch c.format {
	case "json":
		err = fintrack.ExportJSON(out, records)
	case "csv":
		err = fintrack.ExportCSV(out, records)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q, want json or csv\n", c.format)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting records: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.output != "" {
		fmt.Printf("Successfully exported %d records to %s\n", len(records), c.output)
	}
	return subcommands.ExitSuccess
}
