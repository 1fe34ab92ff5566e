package cmd

import (
	"context"
	"flag"
	"time"

	"github.com/fintrack/fintrack"
	"github.com/fintrack/fintrack/renderer"
	"github.com/google/subcommands"
)

// monthsOfHistory is the size of the monthly breakdown in the dashboard.
const monthsOfHistory = 6

type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the spending dashboard" }
func (*reportCmd) Usage() string {
	return `report

  Displays the total spent, the budget position, the per-category totals and
  the monthly totals for the last six months.
`
}

func (*reportCmd) SetFlags(*flag.FlagSet) {}

func (*reportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := OpenLedger()
	records := ledger.List(fintrack.SortDateAsc)
	months := fintrack.MonthlyTotals(records, time.Now(), monthsOfHistory)
	printMarkdown(renderer.Dashboard(records, ledger.Settings(), months))
	return subcommands.ExitSuccess
}
