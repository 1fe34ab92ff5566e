package fintrack

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// This file computes the dashboard aggregates: overall and per-category
// totals, the recent monthly history, and the budget position. All functions
// are pure over a record slice; they never touch storage.

// CategoryTotal is the amount spent in one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// CategoryTotals sums amounts per category, largest first, ties broken
// alphabetically.
func CategoryTotals(records []Transaction) []CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	for _, r := range records {
		sums[r.Category] = sums[r.Category].Add(r.Amount)
	}

	totals := make([]CategoryTotal, 0, len(sums))
	for category, total := range sums {
		totals = append(totals, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		if !totals[i].Total.Equal(totals[j].Total) {
			return totals[i].Total.GreaterThan(totals[j].Total)
		}
		return totals[i].Category < totals[j].Category
	})
	return totals
}

// MonthlyTotal is the amount spent in one calendar month.
type MonthlyTotal struct {
	Year  int
	Month time.Month
	Total decimal.Decimal
}

// Label formats the month as "Jan 26".
func (m MonthlyTotal) Label() string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 06")
}

// MonthlyTotals sums amounts for the n calendar months ending at now,
// oldest first. Records whose date does not parse are skipped.
func MonthlyTotals(records []Transaction, now time.Time, n int) []MonthlyTotal {
	totals := make([]MonthlyTotal, n)
	index := make(map[string]int, n)
	for i := 0; i < n; i++ {
		month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, i-n+1, 0)
		totals[i] = MonthlyTotal{Year: month.Year(), Month: month.Month()}
		index[month.Format("2006-01")] = i
	}

	for _, r := range records {
		t, ok := r.Date.Time()
		if !ok {
			continue
		}
		if i, ok := index[t.Format("2006-01")]; ok {
			totals[i].Total = totals[i].Total.Add(r.Amount)
		}
	}
	return totals
}

// TotalSpent sums all record amounts.
func TotalSpent(records []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return total
}

// BudgetState describes the position of total spending against the cap.
type BudgetState int

const (
	// BudgetUnset means no cap is configured (cap is zero).
	BudgetUnset BudgetState = iota
	// BudgetWithin means spending is at or under the cap.
	BudgetWithin
	// BudgetOver means spending exceeds the cap.
	BudgetOver
)

func (s BudgetState) String() string {
	switch s {
	case BudgetUnset:
		return "unset"
	case BudgetWithin:
		return "within"
	case BudgetOver:
		return "over"
	default:
		return "unknown"
	}
}

// BudgetStatus compares total spending to the configured cap.
func BudgetStatus(total decimal.Decimal, cap float64) BudgetState {
	if cap <= 0 {
		return BudgetUnset
	}
	if total.GreaterThan(decimal.NewFromFloat(cap)) {
		return BudgetOver
	}
	return BudgetWithin
}
