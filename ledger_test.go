package fintrack

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l := NewLedger(NewMemStorage())
	l.Init()
	return l
}

func mustAdd(t *testing.T, l *Ledger, f Fields) Transaction {
	t.Helper()
	record, err := l.Add(f)
	if err != nil {
		t.Fatalf("Add(%+v) failed: %v", f, err)
	}
	return record
}

func TestLedger_AddGetRoundTrip(t *testing.T) {
	l := newTestLedger(t)

	created := mustAdd(t, l, Fields{
		Description: "  Lunch at the canteen  ",
		Amount:      "12.50",
		Category:    "Food",
		Date:        "2026-08-20",
	})

	if created.Description != "Lunch at the canteen" {
		t.Errorf("Add did not trim description: %q", created.Description)
	}
	if !created.Amount.Equal(decimal.RequireFromString("12.50")) {
		t.Errorf("Add amount = %s, want 12.50", created.Amount)
	}
	if created.ID == "" {
		t.Errorf("Add did not assign an id")
	}
	if created.CreatedAt != created.UpdatedAt {
		t.Errorf("Add createdAt %q != updatedAt %q", created.CreatedAt, created.UpdatedAt)
	}

	got, ok := l.Get(created.ID)
	if !ok {
		t.Fatalf("Get(%q) not found after Add", created.ID)
	}
	if !got.Equal(created) {
		t.Errorf("Get(%q) = %+v, want %+v", created.ID, got, created)
	}
}

func TestLedger_AddAssignsUniqueIDs(t *testing.T) {
	l := newTestLedger(t)
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		record := mustAdd(t, l, Fields{Description: "x", Amount: "1", Category: "Other", Date: "2026-01-01"})
		if seen[record.ID] {
			t.Fatalf("duplicate id %q", record.ID)
		}
		seen[record.ID] = true
	}
}

func TestLedger_Update(t *testing.T) {
	l := newTestLedger(t)
	created := mustAdd(t, l, Fields{Description: "Bus ticket", Amount: "3", Category: "Transport", Date: "2026-08-01"})

	updated, ok := l.Update(created.ID, Fields{Description: "Train ticket", Amount: "7.20", Category: "Transport", Date: "2026-08-02"})
	if !ok {
		t.Fatalf("Update(%q) reported not found", created.ID)
	}

	if updated.ID != created.ID {
		t.Errorf("Update changed the id: %q -> %q", created.ID, updated.ID)
	}
	if updated.CreatedAt != created.CreatedAt {
		t.Errorf("Update changed createdAt: %q -> %q", created.CreatedAt, updated.CreatedAt)
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Errorf("Update moved updatedAt backwards: %q -> %q", created.UpdatedAt, updated.UpdatedAt)
	}
	if updated.Description != "Train ticket" || updated.Date != "2026-08-02" {
		t.Errorf("Update did not replace fields: %+v", updated)
	}
	if !updated.Amount.Equal(decimal.RequireFromString("7.20")) {
		t.Errorf("Update amount = %s, want 7.20", updated.Amount)
	}

	if _, ok := l.Update("txn_does-not-exist", Fields{Description: "x", Amount: "1", Category: "Other", Date: "2026-01-01"}); ok {
		t.Errorf("Update(unknown id) reported found")
	}
}

func TestLedger_UpdateBadAmountLeavesRecord(t *testing.T) {
	l := newTestLedger(t)
	created := mustAdd(t, l, Fields{Description: "Bus ticket", Amount: "3", Category: "Transport", Date: "2026-08-01"})

	// An unparseable amount cannot come from validated input; it reports
	// false like an absent id and must not touch the stored record.
	if _, ok := l.Update(created.ID, Fields{Description: "x", Amount: "not a number", Category: "Other", Date: "2026-01-01"}); ok {
		t.Fatalf("Update(bad amount) reported success")
	}
	got, ok := l.Get(created.ID)
	if !ok {
		t.Fatalf("record vanished after failed update")
	}
	if got.Description != "Bus ticket" || !got.Amount.Equal(decimal.RequireFromString("3")) {
		t.Errorf("failed update modified the record: %+v", got)
	}
}

func TestLedger_Delete(t *testing.T) {
	l := newTestLedger(t)
	created := mustAdd(t, l, Fields{Description: "Snack", Amount: "2", Category: "Food", Date: "2026-08-01"})

	if l.Delete("txn_unknown") {
		t.Errorf("Delete(unknown id) = true, want false")
	}
	if got := l.List(""); len(got) != 1 {
		t.Fatalf("Delete(unknown id) changed the collection: %d records", len(got))
	}

	if !l.Delete(created.ID) {
		t.Errorf("Delete(%q) = false, want true", created.ID)
	}
	if _, ok := l.Get(created.ID); ok {
		t.Errorf("Get(%q) found the record after Delete", created.ID)
	}
}

func TestLedger_ListSorting(t *testing.T) {
	l := newTestLedger(t)
	mustAdd(t, l, Fields{Description: "cinema", Amount: "9.50", Category: "Entertainment", Date: "2026-03-10"})
	mustAdd(t, l, Fields{Description: "Apples", Amount: "2", Category: "Food", Date: "2026-01-05"})
	mustAdd(t, l, Fields{Description: "bus pass", Amount: "30", Category: "Transport", Date: "2026-02-01"})
	mustAdd(t, l, Fields{Description: "Coffee", Amount: "2", Category: "Food", Date: "2026-03-10"})

	descriptions := func(records []Transaction) []string {
		out := make([]string, len(records))
		for i, r := range records {
			out[i] = r.Description
		}
		return out
	}

	testCases := []struct {
		sortKey string
		want    []string
	}{
		{SortDateAsc, []string{"Apples", "bus pass", "cinema", "Coffee"}},
		{SortDateDesc, []string{"cinema", "Coffee", "bus pass", "Apples"}},
		{SortAmountAsc, []string{"Apples", "Coffee", "cinema", "bus pass"}},
		{SortAmountDesc, []string{"bus pass", "cinema", "Apples", "Coffee"}},
		{SortDescriptionAsc, []string{"Apples", "bus pass", "cinema", "Coffee"}},
		{SortDescriptionDesc, []string{"Coffee", "cinema", "bus pass", "Apples"}},
		// Unrecognized keys keep insertion order.
		{"not-a-key", []string{"cinema", "Apples", "bus pass", "Coffee"}},
	}

	for _, tc := range testCases {
		t.Run(tc.sortKey, func(t *testing.T) {
			got := descriptions(l.List(tc.sortKey))
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("List(%q) order = %v, want %v", tc.sortKey, got, tc.want)
			}
		})
	}
}

func TestLedger_ListStableForEqualKeys(t *testing.T) {
	l := newTestLedger(t)
	// Same date: insertion order must survive a date sort.
	first := mustAdd(t, l, Fields{Description: "first", Amount: "1", Category: "Other", Date: "2026-05-05"})
	second := mustAdd(t, l, Fields{Description: "second", Amount: "2", Category: "Other", Date: "2026-05-05"})

	got := l.List(SortDateAsc)
	if got[0].ID != first.ID || got[1].ID != second.ID {
		t.Errorf("List(date-asc) reordered equal dates: %v, %v", got[0].Description, got[1].Description)
	}
}

func TestLedger_ListReturnsACopy(t *testing.T) {
	l := newTestLedger(t)
	mustAdd(t, l, Fields{Description: "original", Amount: "1", Category: "Other", Date: "2026-05-05"})

	list := l.List("")
	list[0].Description = "mutated"

	if got := l.List(""); got[0].Description != "original" {
		t.Errorf("mutating List result leaked into the ledger: %q", got[0].Description)
	}
}

func TestLedger_ReplaceAll(t *testing.T) {
	l := newTestLedger(t)
	mustAdd(t, l, Fields{Description: "old", Amount: "1", Category: "Other", Date: "2026-05-05"})

	replacement := []Transaction{
		{ID: "txn_a", Description: "imported", Amount: decimal.NewFromInt(5), Category: "Food", Date: "2026-01-01", CreatedAt: "2026-01-01T00:00:00.000Z", UpdatedAt: "2026-01-01T00:00:00.000Z"},
	}
	l.ReplaceAll(replacement)

	got := l.List("")
	if len(got) != 1 || got[0].ID != "txn_a" {
		t.Errorf("ReplaceAll: List = %+v, want the single imported record", got)
	}
}

func TestLedger_UpdateSettings(t *testing.T) {
	l := newTestLedger(t)

	if got := l.Settings(); got.BaseCurrency != "ZAR" || got.BudgetCap != 0 {
		t.Fatalf("default settings = %+v", got)
	}

	cur := "EUR"
	got := l.UpdateSettings(SettingsPatch{BaseCurrency: &cur})
	if got.BaseCurrency != "EUR" {
		t.Errorf("UpdateSettings base currency = %q, want EUR", got.BaseCurrency)
	}
	// Omitted fields keep their prior value.
	if got.Rates["USD"] != 0.055 {
		t.Errorf("UpdateSettings lost rates: %+v", got.Rates)
	}

	cap := 500.0
	got = l.UpdateSettings(SettingsPatch{BudgetCap: &cap})
	if got.BudgetCap != 500 || got.BaseCurrency != "EUR" {
		t.Errorf("UpdateSettings partial merge = %+v", got)
	}
}

func TestLedger_MutationsPersist(t *testing.T) {
	storage := NewMemStorage()
	l := NewLedger(storage)
	l.Init()
	created := mustAdd(t, l, Fields{Description: "persists", Amount: "4.20", Category: "Food", Date: "2026-08-20"})

	// A fresh ledger over the same storage must see the mutation.
	reloaded := NewLedger(storage)
	reloaded.Init()
	got, ok := reloaded.Get(created.ID)
	if !ok {
		t.Fatalf("record %q not found after reload", created.ID)
	}
	if !got.Equal(created) {
		t.Errorf("reloaded record = %+v, want %+v", got, created)
	}
}
