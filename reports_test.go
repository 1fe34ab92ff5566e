package fintrack

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func rec(desc, amount, category, date string) Transaction {
	return Transaction{
		ID:          NewID(),
		Description: desc,
		Amount:      decimal.RequireFromString(amount),
		Category:    category,
		Date:        Date(date),
	}
}

func TestCategoryTotals(t *testing.T) {
	records := []Transaction{
		rec("lunch", "10", "Food", "2026-08-01"),
		rec("snack", "2.50", "Food", "2026-08-02"),
		rec("bus", "12.50", "Transport", "2026-08-02"),
		rec("book", "12.50", "Books", "2026-08-03"),
	}

	got := CategoryTotals(records)
	want := []CategoryTotal{
		{"Books", decimal.RequireFromString("12.5")},
		{"Food", decimal.RequireFromString("12.5")},
		{"Transport", decimal.RequireFromString("12.5")},
	}
	if len(got) != len(want) {
		t.Fatalf("CategoryTotals = %v, want %d categories", got, len(want))
	}
	for i := range want {
		if got[i].Category != want[i].Category || !got[i].Total.Equal(want[i].Total) {
			t.Errorf("CategoryTotals[%d] = %v/%s, want %v/%s", i, got[i].Category, got[i].Total, want[i].Category, want[i].Total)
		}
	}
}

func TestMonthlyTotals(t *testing.T) {
	now := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)
	records := []Transaction{
		rec("this month", "10", "Food", "2026-08-05"),
		rec("also this month", "5", "Food", "2026-08-20"),
		rec("last month", "7", "Food", "2026-07-31"),
		rec("too old", "100", "Food", "2026-01-15"),
		rec("future", "100", "Food", "2026-09-01"),
		rec("unparseable date skipped", "100", "Food", "soon"),
	}

	got := MonthlyTotals(records, now, 6)
	if len(got) != 6 {
		t.Fatalf("MonthlyTotals returned %d buckets, want 6", len(got))
	}
	if got[0].Month != time.March || got[5].Month != time.August {
		t.Fatalf("MonthlyTotals range = %v..%v, want Mar..Aug", got[0].Month, got[5].Month)
	}
	if !got[5].Total.Equal(decimal.NewFromInt(15)) {
		t.Errorf("August total = %s, want 15", got[5].Total)
	}
	if !got[4].Total.Equal(decimal.NewFromInt(7)) {
		t.Errorf("July total = %s, want 7", got[4].Total)
	}
	if !got[0].Total.IsZero() {
		t.Errorf("March total = %s, want 0", got[0].Total)
	}
	if got[5].Label() != "Aug 26" {
		t.Errorf("Label = %q, want %q", got[5].Label(), "Aug 26")
	}
}

func TestBudgetStatus(t *testing.T) {
	testCases := []struct {
		total string
		cap   float64
		want  BudgetState
	}{
		{"100", 0, BudgetUnset},
		{"100", 100, BudgetWithin},
		{"99.99", 100, BudgetWithin},
		{"100.01", 100, BudgetOver},
	}
	for _, tc := range testCases {
		if got := BudgetStatus(decimal.RequireFromString(tc.total), tc.cap); got != tc.want {
			t.Errorf("BudgetStatus(%s, %v) = %v, want %v", tc.total, tc.cap, got, tc.want)
		}
	}
}

func TestConvert(t *testing.T) {
	settings := DefaultSettings()
	amount := decimal.NewFromInt(100)

	got := Convert(amount, "USD", settings)
	if !got.Amount().Equal(decimal.RequireFromString("5.5")) {
		t.Errorf("Convert(100, USD) = %s, want 5.5", got.Amount())
	}
	if got.Currency() != "USD" {
		t.Errorf("Convert currency = %q, want USD", got.Currency())
	}

	// Base currency and unknown codes keep the stored amount.
	if got := Convert(amount, "ZAR", settings); !got.Amount().Equal(amount) {
		t.Errorf("Convert(100, ZAR) = %s, want 100", got.Amount())
	}
	if got := Convert(amount, "JPY", settings); !got.Amount().Equal(amount) {
		t.Errorf("Convert(100, JPY) = %s, want 100", got.Amount())
	}
}

func TestMoneyString(t *testing.T) {
	m := M(decimal.RequireFromString("12.5"), "USD")
	if got := m.String(); got != "$12.50" {
		t.Errorf("Money.String() = %q, want %q", got, "$12.50")
	}
}
