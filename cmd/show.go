package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fintrack/fintrack/renderer"
	"github.com/google/subcommands"
)

type showCmd struct {
	id string
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display a single expense record" }
func (*showCmd) Usage() string {
	return `show -id <id>

  Displays the record with the given id, converted to the base currency.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Record id (as printed by list)")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	ledger := OpenLedger()
	record, ok := ledger.Get(c.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no record with id %q\n", c.id)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Record(record, ledger.Settings()))
	return subcommands.ExitSuccess
}
