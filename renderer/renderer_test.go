package renderer

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fintrack/fintrack"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

func sampleRecords() []fintrack.Transaction {
	return []fintrack.Transaction{
		{
			ID:          "txn_1",
			Description: "Lunch at the canteen",
			Amount:      decimal.RequireFromString("12.50"),
			Category:    "Food",
			Date:        "2026-08-20",
			CreatedAt:   "2026-08-20T10:00:00.000Z",
			UpdatedAt:   "2026-08-20T10:00:00.000Z",
		},
		{
			ID:          "txn_2",
			Description: "Monthly bus | train pass",
			Amount:      decimal.NewFromInt(30),
			Category:    "Transport",
			Date:        "2026-08-01",
			CreatedAt:   "2026-08-01T08:00:00.000Z",
			UpdatedAt:   "2026-08-01T08:00:00.000Z",
		},
	}
}

// renderHTML converts markdown to HTML with table support, to check the
// output is structurally valid markdown and not just plausible text.
func renderHTML(t *testing.T, md string) string {
	t.Helper()
	gm := goldmark.New(goldmark.WithExtensions(extension.Table))
	var buf bytes.Buffer
	if err := gm.Convert([]byte(md), &buf); err != nil {
		t.Fatalf("markdown does not convert: %v\n%s", err, md)
	}
	return buf.String()
}

func TestRecords(t *testing.T) {
	got := Records(sampleRecords(), fintrack.DefaultSettings())

	html := renderHTML(t, got)
	if !strings.Contains(html, "<table>") {
		t.Errorf("Records output did not render as a markdown table:\n%s", got)
	}
	if !strings.Contains(got, "Lunch at the canteen") {
		t.Errorf("Records output missing description:\n%s", got)
	}
	// A pipe in user text must not add a table column.
	if !strings.Contains(got, `Monthly bus \| train pass`) {
		t.Errorf("Records output did not escape the pipe:\n%s", got)
	}
}

func TestRecords_Empty(t *testing.T) {
	got := Records(nil, fintrack.DefaultSettings())
	if !strings.Contains(got, "No transactions recorded.") {
		t.Errorf("Records(nil) = %q", got)
	}
}

func TestDashboard(t *testing.T) {
	records := sampleRecords()
	settings := fintrack.DefaultSettings()
	settings.BudgetCap = 40

	now := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)
	months := fintrack.MonthlyTotals(records, now, 6)
	got := Dashboard(records, settings, months)

	html := renderHTML(t, got)
	if !strings.Contains(html, "<table>") {
		t.Errorf("Dashboard output did not render tables:\n%s", got)
	}
	if !strings.Contains(got, "Over budget cap of R40.00 by R2.50.") {
		t.Errorf("Dashboard missing budget position (42.50 > 40):\n%s", got)
	}
	if !strings.Contains(got, "Food") || !strings.Contains(got, "Transport") {
		t.Errorf("Dashboard missing category rows:\n%s", got)
	}
	if !strings.Contains(got, "Aug 26") {
		t.Errorf("Dashboard missing monthly history:\n%s", got)
	}
}

func TestDashboard_WithinBudget(t *testing.T) {
	records := sampleRecords()
	settings := fintrack.DefaultSettings()
	settings.BudgetCap = 50

	got := Dashboard(records, settings, nil)
	if !strings.Contains(got, "Within budget cap of R50.00, R7.50 remaining.") {
		t.Errorf("Dashboard missing remaining budget (50 - 42.50):\n%s", got)
	}
}

func TestSettings(t *testing.T) {
	got := Settings(fintrack.DefaultSettings())
	for _, want := range []string{"Base currency: ZAR", "Budget cap: unset", "EUR: 0.051", "USD: 0.055"} {
		if !strings.Contains(got, want) {
			t.Errorf("Settings output missing %q:\n%s", want, got)
		}
	}
}
