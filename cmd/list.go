package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/fintrack/fintrack"
	"github.com/fintrack/fintrack/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	sortKey  string
	category string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list expense records" }
func (*listCmd) Usage() string {
	return `list [-sort <key>] [-c <category>]

  Lists the records as a table, newest first by default. Sort keys are
  date-asc, date-desc, amount-asc, amount-desc, description-asc and
  description-desc.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sortKey, "sort", fintrack.SortDateDesc, "Sort key")
	f.StringVar(&c.category, "c", "", "Only show records in this category")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := OpenLedger()
	records := ledger.List(c.sortKey)
	if c.category != "" {
		filtered := records[:0]
		for _, r := range records {
			if strings.EqualFold(r.Category, c.category) {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	if len(records) == 0 {
		fmt.Println("No records found.")
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.Records(records, ledger.Settings()))
	return subcommands.ExitSuccess
}
