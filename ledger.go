package fintrack

import (
	"sort"
	"strings"
)

// Ledger is the single authoritative holder of the in-memory record
// collection and the settings singleton. All mutation goes through it, and
// every mutation is written to storage before the call returns.
//
// The Ledger is owned by exactly one caller at a time: there is no locking
// because there is no concurrent mutator. Reads hand out copies, never the
// live slice.
type Ledger struct {
	storage  Storage
	records  []Transaction
	settings Settings
}

// NewLedger creates a ledger persisting to s. Call Init before any other
// operation.
func NewLedger(s Storage) *Ledger {
	return &Ledger{storage: s}
}

// Init loads records and settings from storage into memory. When storage has
// no prior data the records start empty and the settings fall back to
// DefaultSettings.
func (l *Ledger) Init() {
	l.records = LoadRecords(l.storage)
	l.settings = LoadSettings(l.storage)
}

// Add creates a record from validated fields, appends it in insertion order,
// persists the collection, and returns the created record. It trusts its
// input: callers run ValidateForm first. The only error is an unparseable
// amount, which validated input cannot produce.
func (l *Ledger) Add(f Fields) (Transaction, error) {
	record, err := newTransaction(f)
	if err != nil {
		return Transaction{}, err
	}
	l.records = append(l.records, record)
	l.persist()
	return record, nil
}

// Update replaces the description, amount, category and date of the record
// with the given id, bumps its updatedAt, and persists. ID and createdAt are
// preserved. The boolean is false when no record has that id, or when the
// amount does not parse; since callers run ValidateForm first, a false on
// validated input always means absent. A failed Update leaves the stored
// record untouched.
func (l *Ledger) Update(id string, f Fields) (Transaction, bool) {
	i := l.indexOf(id)
	if i < 0 {
		return Transaction{}, false
	}

	updated, err := newTransaction(f)
	if err != nil {
		return Transaction{}, false
	}
	updated.ID = l.records[i].ID
	updated.CreatedAt = l.records[i].CreatedAt

	l.records[i] = updated
	l.persist()
	return updated, true
}

// Delete removes the record with the given id and persists. It reports
// whether a removal occurred.
func (l *Ledger) Delete(id string) bool {
	i := l.indexOf(id)
	if i < 0 {
		return false
	}
	l.records = append(l.records[:i], l.records[i+1:]...)
	l.persist()
	return true
}

// Get returns the record with the given id. The boolean is false when absent.
func (l *Ledger) Get(id string) (Transaction, bool) {
	i := l.indexOf(id)
	if i < 0 {
		return Transaction{}, false
	}
	return l.records[i], true
}

// Sort keys accepted by List.
const (
	SortDateAsc         = "date-asc"
	SortDateDesc        = "date-desc"
	SortAmountAsc       = "amount-asc"
	SortAmountDesc      = "amount-desc"
	SortDescriptionAsc  = "description-asc"
	SortDescriptionDesc = "description-desc"
)

// List returns a new slice of all records ordered by the given sort key.
// Sorting is stable: records with equal keys keep their insertion order.
// An unrecognized key returns the records in insertion order.
func (l *Ledger) List(sortKey string) []Transaction {
	records := append([]Transaction(nil), l.records...)

	var less func(a, b Transaction) bool
	switch sortKey {
	case SortDateAsc:
		less = func(a, b Transaction) bool { return a.Date < b.Date }
	case SortDateDesc:
		less = func(a, b Transaction) bool { return a.Date > b.Date }
	case SortAmountAsc:
		less = func(a, b Transaction) bool { return a.Amount.LessThan(b.Amount) }
	case SortAmountDesc:
		less = func(a, b Transaction) bool { return a.Amount.GreaterThan(b.Amount) }
	case SortDescriptionAsc:
		less = func(a, b Transaction) bool {
			return strings.ToLower(a.Description) < strings.ToLower(b.Description)
		}
	case SortDescriptionDesc:
		less = func(a, b Transaction) bool {
			return strings.ToLower(a.Description) > strings.ToLower(b.Description)
		}
	default:
		return records
	}

	sort.SliceStable(records, func(i, j int) bool { return less(records[i], records[j]) })
	return records
}

// ReplaceAll overwrites the whole collection (used by import) and persists.
func (l *Ledger) ReplaceAll(records []Transaction) {
	l.records = append([]Transaction(nil), records...)
	l.persist()
}

// Settings returns a copy of the current settings.
func (l *Ledger) Settings() Settings {
	return l.settings.clone()
}

// UpdateSettings merges the patch over the current settings, persists them,
// and returns the result.
func (l *Ledger) UpdateSettings(p SettingsPatch) Settings {
	l.settings = p.merge(l.settings)
	SaveSettings(l.storage, l.settings)
	return l.settings.clone()
}

func (l *Ledger) indexOf(id string) int {
	for i := range l.records {
		if l.records[i].ID == id {
			return i
		}
	}
	return -1
}

func (l *Ledger) persist() {
	SaveRecords(l.storage, l.records)
}
