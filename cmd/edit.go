package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fintrack/fintrack"
	"github.com/fintrack/fintrack/renderer"
	"github.com/google/subcommands"
)

type editCmd struct {
	id          string
	description string
	amount      string
	category    string
	date        string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "replace the fields of an existing expense" }
func (*editCmd) Usage() string {
	return `edit -id <id> -d <description> -a <amount> -c <category> -on <date>

  Replaces all fields of the record with the given id. The id and creation
  time are preserved; the update time is bumped.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Record id (as printed by list)")
	f.StringVar(&c.description, "d", "", "Expense description")
	f.StringVar(&c.amount, "a", "", "Amount spent (e.g., 0, 12, 12.50)")
	f.StringVar(&c.category, "c", "", "Category (letters, spaces, or hyphens)")
	f.StringVar(&c.date, "on", "", "Expense date (YYYY-MM-DD)")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	fields := fintrack.Fields{
		Description: c.description,
		Amount:      c.amount,
		Category:    c.category,
		Date:        c.date,
	}
	result := fintrack.ValidateForm(fields)
	if !result.IsValid {
		printFieldErrors(result.Errors)
		return subcommands.ExitUsageError
	}
	if result.DuplicateWarning != "" {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", result.DuplicateWarning)
	}

	ledger := OpenLedger()
	record, ok := ledger.Update(c.id, fields)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no record with id %q\n", c.id)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully updated record %s\n", record.ID)
	printMarkdown(renderer.Record(record, ledger.Settings()))
	return subcommands.ExitSuccess
}
