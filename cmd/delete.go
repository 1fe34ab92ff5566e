package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	id string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove an expense record" }
func (*deleteCmd) Usage() string {
	return `delete -id <id>

  Removes the record with the given id from the collection.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Record id (as printed by list)")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	ledger := OpenLedger()
	if !ledger.Delete(c.id) {
		fmt.Fprintf(os.Stderr, "Error: no record with id %q\n", c.id)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully deleted record %s\n", c.id)
	return subcommands.ExitSuccess
}
