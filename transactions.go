package fintrack

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// idPrefix marks record identifiers so they are recognizable in exported files.
const idPrefix = "txn_"

// NewID returns a fresh opaque record identifier.
func NewID() string {
	return idPrefix + uuid.NewString()
}

// Fields carries the raw user-supplied values for one record, as typed into
// a form or passed on a command line. ValidateForm checks them; Ledger.Add
// and Ledger.Update consume them after validation.
type Fields struct {
	Description string
	Amount      string
	Category    string
	Date        string
}

// Transaction is one expense record.
//
// ID and the two timestamps are assigned by the Ledger and never by callers.
// ID is unique across the collection and immutable; UpdatedAt is always at or
// after CreatedAt.
type Transaction struct {
	ID          string
	Description string
	Amount      decimal.Decimal
	Category    string
	Date        Date
	CreatedAt   Timestamp
	UpdatedAt   Timestamp
}

// Equal reports whether two transactions carry the same values.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Description == o.Description &&
		t.Amount.Equal(o.Amount) &&
		t.Category == o.Category &&
		t.Date == o.Date &&
		t.CreatedAt == o.CreatedAt &&
		t.UpdatedAt == o.UpdatedAt
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s (%s)", t.Date, t.Description, t.Amount, t.Category)
}

// MarshalJSON writes the record with a stable field order and the amount as a
// bare JSON number, matching the persisted and exported file formats.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("description", t.Description)
	w.AppendNumber("amount", t.Amount.String())
	w.Append("category", t.Category)
	w.Append("date", t.Date)
	w.Append("createdAt", t.CreatedAt)
	w.Append("updatedAt", t.UpdatedAt)
	return w.MarshalJSON()
}

// UnmarshalJSON reads a record. The amount must be a JSON number; the other
// fields are taken verbatim, with no format validation, so records imported
// from outside survive a round trip unchanged.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	// A dedicated local struct with tag annotations keeps the wire format in one place.
	type jrecord struct {
		ID          string      `json:"id"`
		Description string      `json:"description"`
		Amount      json.Number `json:"amount"`
		Category    string      `json:"category"`
		Date        Date        `json:"date"`
		CreatedAt   Timestamp   `json:"createdAt"`
		UpdatedAt   Timestamp   `json:"updatedAt"`
	}

	var jr jrecord
	if err := json.Unmarshal(data, &jr); err != nil {
		return err
	}

	amount := decimal.Zero
	if jr.Amount != "" {
		var err error
		amount, err = decimal.NewFromString(jr.Amount.String())
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", jr.Amount, err)
		}
	}

	*t = Transaction{
		ID:          jr.ID,
		Description: jr.Description,
		Amount:      amount,
		Category:    jr.Category,
		Date:        jr.Date,
		CreatedAt:   jr.CreatedAt,
		UpdatedAt:   jr.UpdatedAt,
	}
	return nil
}

// newTransaction builds a record from validated fields. The description is
// trimmed and the amount parsed; both are trusted to have passed ValidateForm.
func newTransaction(f Fields) (Transaction, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(f.Amount))
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid amount %q: %w", f.Amount, err)
	}
	now := Now()
	return Transaction{
		ID:          NewID(),
		Description: strings.TrimSpace(f.Description),
		Amount:      amount,
		Category:    f.Category,
		Date:        Date(f.Date),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

var _ json.Marshaler = Transaction{}
var _ json.Unmarshaler = (*Transaction)(nil)
