package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fintrack/fintrack"
	"github.com/google/subcommands"
)

type interestCmd struct {
	principal float64
	rate      float64
	years     float64
}

func (*interestCmd) Name() string     { return "interest" }
func (*interestCmd) Synopsis() string { return "compute compound interest on a deposit" }
func (*interestCmd) Usage() string {
	return `interest -p <principal> -r <rate> -y <years>

  Computes the final amount for a principal compounded monthly at the given
  annual rate over the given number of years.
`
}

func (c *interestCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.principal, "p", 0, "Initial deposit amount")
	f.Float64Var(&c.rate, "r", 0, "Annual interest rate in percent (e.g., 4.5)")
	f.Float64Var(&c.years, "y", 0, "Investment duration in years")
}

func (c *interestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	final, err := fintrack.CompoundInterest(c.principal, c.rate, c.years)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		f.Usage()
		return subcommands.ExitUsageError
	}

	fmt.Printf("Final amount: %.2f\n", final)
	fmt.Printf("Interest earned: %.2f\n", final-c.principal)
	return subcommands.ExitSuccess
}
