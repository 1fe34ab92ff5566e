package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fintrack/fintrack"
	"github.com/fintrack/fintrack/renderer"
	"github.com/google/subcommands"
)

// rateFlags collects repeated -rate CODE=VALUE flags into a mapping.
type rateFlags map[string]float64

func (r rateFlags) String() string {
	pairs := make([]string, 0, len(r))
	for code, rate := range r {
		pairs = append(pairs, fmt.Sprintf("%s=%g", code, rate))
	}
	return strings.Join(pairs, ",")
}

func (r rateFlags) Set(value string) error {
	code, rate, ok := strings.Cut(value, "=")
	if !ok {
		return fmt.Errorf("expected CODE=VALUE, got %q", value)
	}
	v, err := strconv.ParseFloat(rate, 64)
	if err != nil {
		return fmt.Errorf("invalid rate for %s: %w", code, err)
	}
	r[strings.ToUpper(code)] = v
	return nil
}

type settingsCmd struct {
	currency string
	budget   float64
	rates    rateFlags
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show or change the user preferences" }
func (*settingsCmd) Usage() string {
	return `settings [-currency <code>] [-budget <amount>] [-rate CODE=VALUE]...

  Without flags, displays the current settings. With flags, applies the given
  changes and displays the result. Passing -rate replaces the whole rate
  mapping, so repeat it for every currency you want to keep.
`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {
	c.rates = make(rateFlags)
	f.StringVar(&c.currency, "currency", "", "Base currency code (e.g., ZAR, USD)")
	f.Float64Var(&c.budget, "budget", -1, "Budget cap, 0 to unset")
	f.Var(c.rates, "rate", "Conversion rate as CODE=VALUE, repeatable")
}

func (c *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var patch fintrack.SettingsPatch
	if c.currency != "" {
		code := strings.ToUpper(c.currency)
		patch.BaseCurrency = &code
	}
	if c.budget >= 0 {
		patch.BudgetCap = &c.budget
	}
	if len(c.rates) > 0 {
		patch.Rates = c.rates
	}

	ledger := OpenLedger()
	settings := ledger.Settings()
	if patch.BaseCurrency != nil || patch.BudgetCap != nil || patch.Rates != nil {
		settings = ledger.UpdateSettings(patch)
		fmt.Fprintln(os.Stderr, "Settings updated.")
	}
	printMarkdown(renderer.Settings(settings))
	return subcommands.ExitSuccess
}
