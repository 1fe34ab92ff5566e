package fintrack

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// This file handles the bulk import/export formats: a pretty-printed JSON
// array for backup/restore round trips, and a CSV rendition for spreadsheets.
//
// Import is gated by a structural check only: shape, required fields and the
// amount type. It deliberately does not re-run the form validation rules, so
// a backup taken elsewhere is restored verbatim even when its descriptions or
// dates would not pass the live form.

// requiredImportFields lists the keys every imported record must carry.
var requiredImportFields = []string{"id", "description", "amount", "category", "date", "createdAt", "updatedAt"}

// ImportResult is the typed outcome of a bulk import attempt. When Valid is
// false, Message names the first offending record and the reason, and Data is
// nil. The whole import is rejected on any failure; there is no partial
// import.
type ImportResult struct {
	Valid   bool
	Message string
	Data    []Transaction
}

func invalidImport(format string, args ...any) ImportResult {
	return ImportResult{Message: fmt.Sprintf(format, args...)}
}

// ImportRecords reads a JSON payload from r and validates it structurally.
// A payload that does not parse at all is reported as a generic invalid-file
// failure; everything else goes through ValidateImportData.
func ImportRecords(r io.Reader) ImportResult {
	data, err := io.ReadAll(r)
	if err != nil {
		return invalidImport("invalid file: %v", err)
	}
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return invalidImport("invalid file: not parseable as JSON.")
	}
	return ValidateImportData(raw)
}

// ValidateImportData structurally validates a parsed JSON payload as a record
// collection. The top-level value must be an array; every element must be a
// non-null object carrying all required fields, with a non-negative number
// for amount. On success the records are returned as parsed, without
// normalization.
func ValidateImportData(raw json.RawMessage) ImportResult {
	// Unmarshal alone is not enough: a JSON null decodes into a nil slice
	// without error, so check the payload starts an actual array.
	trimmed := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(trimmed, "[") {
		return invalidImport("JSON must be an array of records.")
	}
	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return invalidImport("JSON must be an array of records.")
	}

	records := make([]Transaction, 0, len(elements))
	for i, element := range elements {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(element, &obj); err != nil || obj == nil {
			return invalidImport("Record at index %d is not a valid object.", i)
		}

		for _, field := range requiredImportFields {
			if _, ok := obj[field]; !ok {
				return invalidImport("Record at index %d is missing required field %q.", i, field)
			}
		}

		// Decode into a pointer so a JSON null is caught as well.
		var amount *float64
		if err := json.Unmarshal(obj["amount"], &amount); err != nil || amount == nil || *amount < 0 {
			return invalidImport("Record at index %d has an invalid amount.", i)
		}

		var record Transaction
		if err := json.Unmarshal(element, &record); err != nil {
			return invalidImport("Record at index %d is not a valid record: %v.", i, err)
		}
		records = append(records, record)
	}

	return ImportResult{Valid: true, Message: "Valid data.", Data: records}
}

// ExportJSON writes the record collection as a pretty-printed JSON array,
// the same shape ImportRecords accepts.
func ExportJSON(w io.Writer, records []Transaction) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal records: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write export: %w", err)
	}
	return nil
}

// csvHeader is the first row of the CSV export.
var csvHeader = []string{"ID", "Description", "Amount", "Category", "Date", "CreatedAt", "UpdatedAt"}

// ExportCSV writes the record collection as CSV, one row per record.
// Description and category are always quoted, with inner quotes doubled.
func ExportCSV(w io.Writer, records []Transaction) error {
	if _, err := fmt.Fprintln(w, strings.Join(csvHeader, ",")); err != nil {
		return fmt.Errorf("cannot write export: %w", err)
	}
	for _, r := range records {
		row := strings.Join([]string{
			r.ID,
			quoteCSV(r.Description),
			r.Amount.String(),
			quoteCSV(r.Category),
			r.Date.String(),
			r.CreatedAt.String(),
			r.UpdatedAt.String(),
		}, ",")
		if _, err := fmt.Fprintln(w, row); err != nil {
			return fmt.Errorf("cannot write export: %w", err)
		}
	}
	return nil
}

func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
