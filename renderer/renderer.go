// Package renderer turns records and dashboard aggregates into markdown,
// ready for terminal display.
package renderer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fintrack/fintrack"
	"github.com/shopspring/decimal"
)

// Records renders the record list as a markdown table. Amounts are shown in
// the settings' base display currency.
func Records(records []fintrack.Transaction, s fintrack.Settings) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Transactions\n\n")
	if len(records) == 0 {
		fmt.Fprintln(&b, "No transactions recorded.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Date | Description | Category | Amount |")
	fmt.Fprintln(&b, "|---|---|---|---:|")
	for _, r := range records {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			r.Date, escapeCell(r.Description), escapeCell(r.Category),
			fintrack.Convert(r.Amount, s.BaseCurrency, s))
	}
	fmt.Fprintf(&b, "\n%d transaction(s).\n", len(records))
	return b.String()
}

// Record renders a single record as a definition list.
func Record(r fintrack.Transaction, s fintrack.Settings) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Transaction %s\n\n", r.ID)
	fmt.Fprintf(&b, "- Description: %s\n", r.Description)
	fmt.Fprintf(&b, "- Amount: %s\n", fintrack.Convert(r.Amount, s.BaseCurrency, s))
	fmt.Fprintf(&b, "- Category: %s\n", r.Category)
	fmt.Fprintf(&b, "- Date: %s\n", r.Date)
	fmt.Fprintf(&b, "- Created: %s\n", r.CreatedAt)
	fmt.Fprintf(&b, "- Updated: %s\n", r.UpdatedAt)
	return b.String()
}

// Dashboard renders the spending overview: the total, the budget position,
// the per-category breakdown and the recent monthly history.
func Dashboard(records []fintrack.Transaction, s fintrack.Settings, months []fintrack.MonthlyTotal) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Dashboard\n\n")

	total := fintrack.TotalSpent(records)
	spent := fintrack.Convert(total, s.BaseCurrency, s)
	cap := fintrack.Convert(capAmount(s), s.BaseCurrency, s)
	fmt.Fprintf(&b, "Total spent: **%s**\n\n", spent)

	switch fintrack.BudgetStatus(total, s.BudgetCap) {
	case fintrack.BudgetUnset:
		fmt.Fprintln(&b, "No budget cap set.")
	case fintrack.BudgetWithin:
		fmt.Fprintf(&b, "Within budget cap of %s, %s remaining.\n", cap, cap.Sub(spent))
	case fintrack.BudgetOver:
		fmt.Fprintf(&b, "Over budget cap of %s by %s.\n", cap, spent.Sub(cap))
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "## By category")
	fmt.Fprintln(&b)
	categories := fintrack.CategoryTotals(records)
	if len(categories) == 0 {
		fmt.Fprintln(&b, "No transactions recorded.")
	} else {
		fmt.Fprintln(&b, "| Category | Total |")
		fmt.Fprintln(&b, "|---|---:|")
		for _, c := range categories {
			fmt.Fprintf(&b, "| %s | %s |\n", escapeCell(c.Category), fintrack.Convert(c.Total, s.BaseCurrency, s))
		}
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "## Monthly history")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "| Month | Total |")
	fmt.Fprintln(&b, "|---|---:|")
	for _, m := range months {
		fmt.Fprintf(&b, "| %s | %s |\n", m.Label(), fintrack.Convert(m.Total, s.BaseCurrency, s))
	}
	return b.String()
}

// Settings renders the settings singleton.
func Settings(s fintrack.Settings) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Settings\n\n")
	fmt.Fprintf(&b, "- Base currency: %s\n", s.BaseCurrency)
	if s.BudgetCap > 0 {
		fmt.Fprintf(&b, "- Budget cap: %.2f\n", s.BudgetCap)
	} else {
		fmt.Fprintf(&b, "- Budget cap: unset\n")
	}
	if len(s.Rates) > 0 {
		fmt.Fprintln(&b, "- Rates:")
		for _, code := range sortedCodes(s.Rates) {
			fmt.Fprintf(&b, "  - %s: %v\n", code, s.Rates[code])
		}
	}
	return b.String()
}

func capAmount(s fintrack.Settings) decimal.Decimal {
	return decimal.NewFromFloat(s.BudgetCap)
}

func sortedCodes(rates map[string]float64) []string {
	codes := make([]string, 0, len(rates))
	for code := range rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// escapeCell keeps user text from breaking the table layout.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
