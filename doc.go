// Package fintrack implements a local-first personal expense tracker: users
// record transactions, view aggregated dashboards, and manage settings, all
// persisted to a simple file-backed key-value store.
//
// The core functionalities include:
//   - Form Validation: A rule table of per-field matchers (description,
//     amount, category, date) plus an advisory duplicate-word check, run
//     before any raw input becomes a record.
//   - Ledger Management: A single in-memory owner of the record collection
//     and the settings singleton, persisting synchronously after every
//     mutation.
//   - Data Persistence: Encoding and decoding records to a human-readable
//     JSONL file and settings to JSON, degrading to safe defaults when the
//     store is missing or corrupt.
//   - Import/Export: A structurally validated bulk JSON import, and JSON and
//     CSV exports for backup and spreadsheets.
//   - Reports: Category and monthly spending aggregates, budget position,
//     and currency display conversion.
//
// This package serves as the foundational logic for the `ft` command-line
// tool.
package fintrack
