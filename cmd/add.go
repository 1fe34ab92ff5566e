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

type addCmd struct {
	description string
	amount      string
	category    string
	date        string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new expense" }
func (*addCmd) Usage() string {
	return `add -d <description> -a <amount> -c <category> [-on <date>]

  Validates the fields and appends a new expense record to the collection.
  A repeated word in the description is reported as a warning but does not
  block the record.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "d", "", "Expense description")
	f.StringVar(&c.amount, "a", "", "Amount spent (e.g., 0, 12, 12.50)")
	f.StringVar(&c.category, "c", "", "Category (letters, spaces, or hyphens)")
	f.StringVar(&c.date, "on", fintrack.Today().String(), "Expense date (YYYY-MM-DD)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	record, err := ledger.Add(fields)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding record: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully added record %s\n", record.ID)
	printMarkdown(renderer.Record(record, ledger.Settings()))
	return subcommands.ExitSuccess
}
