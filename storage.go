package fintrack

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Storage keys. Records are kept as JSONL, one record per line, so the data
// file stays human-readable and diff-friendly. Settings are a single object.
const (
	recordsKey  = "appdata.jsonl"
	settingsKey = "appsettings.json"
)

// Storage is a durable key-value byte store.
type Storage interface {
	// Read returns the payload under key, or an error wrapping fs.ErrNotExist
	// when the key has never been written.
	Read(key string) ([]byte, error)
	// Write durably stores the payload under key.
	Write(key string, data []byte) error
}

// DirStorage stores each key as a file in a directory.
type DirStorage struct {
	dir string
}

// NewDirStorage returns a DirStorage rooted at dir. The directory is created
// on the first write.
func NewDirStorage(dir string) *DirStorage { return &DirStorage{dir: dir} }

func (s *DirStorage) Read(key string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.dir, key))
}

func (s *DirStorage) Write(key string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("cannot create data directory %q: %w", s.dir, err)
	}
	path := filepath.Join(s.dir, key)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	return nil
}

// MemStorage is an in-memory Storage, used in tests and wherever durability
// is not wanted. Its zero value is not usable; use NewMemStorage.
type MemStorage struct {
	data map[string][]byte
}

func NewMemStorage() *MemStorage { return &MemStorage{data: make(map[string][]byte)} }

func (s *MemStorage) Read(key string) ([]byte, error) {
	data, ok := s.data[key]
	if !ok {
		return nil, fmt.Errorf("key %q: %w", key, fs.ErrNotExist)
	}
	return data, nil
}

func (s *MemStorage) Write(key string, data []byte) error {
	s.data[key] = append([]byte(nil), data...)
	return nil
}

// Load/save below deliberately swallow storage failures: a missing or corrupt
// store degrades to an empty collection or default settings, and a failed
// write leaves the in-memory state as the source of truth for the session.
// Failures are logged, never returned.

// LoadRecords reads the record collection from storage. On a missing key or
// a parse failure it returns an empty collection.
func LoadRecords(s Storage) []Transaction {
	data, err := s.Read(recordsKey)
	if err != nil {
		if !isNotExist(err) {
			log.Printf("load-records error=%q, starting empty", err)
		}
		return []Transaction{}
	}

	records, err := decodeRecords(bytes.NewReader(data))
	if err != nil {
		log.Printf("load-records parse error=%q, starting empty", err)
		return []Transaction{}
	}
	return records
}

// SaveRecords writes the full record collection to storage. A write failure
// is logged and swallowed.
func SaveRecords(s Storage, records []Transaction) {
	var buf bytes.Buffer
	if err := encodeRecords(&buf, records); err != nil {
		log.Printf("save-records encode error=%q", err)
		return
	}
	if err := s.Write(recordsKey, buf.Bytes()); err != nil {
		log.Printf("save-records error=%q", err)
	}
}

// LoadSettings reads the settings singleton from storage, falling back to
// DefaultSettings on a missing key or a parse failure.
func LoadSettings(s Storage) Settings {
	data, err := s.Read(settingsKey)
	if err != nil {
		if !isNotExist(err) {
			log.Printf("load-settings error=%q, using defaults", err)
		}
		return DefaultSettings()
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("load-settings parse error=%q, using defaults", err)
		return DefaultSettings()
	}
	if settings.Rates == nil {
		settings.Rates = make(map[string]float64)
	}
	return settings
}

// SaveSettings writes the settings singleton to storage. A write failure is
// logged and swallowed.
func SaveSettings(s Storage, settings Settings) {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		log.Printf("save-settings encode error=%q", err)
		return
	}
	if err := s.Write(settingsKey, data); err != nil {
		log.Printf("save-settings error=%q", err)
	}
}

// encodeRecords writes records in JSONL format, one record per line.
func encodeRecords(w *bytes.Buffer, records []Transaction) error {
	for _, record := range records {
		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("cannot marshal record %q: %w", record.ID, err)
		}
		w.Write(data)
		w.WriteByte('\n')
	}
	return nil
}

// decodeRecords reads a JSONL stream of records. Empty lines are skipped.
func decodeRecords(r *bytes.Reader) ([]Transaction, error) {
	records := make([]Transaction, 0)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		txt := scanner.Bytes()
		if len(bytes.TrimSpace(txt)) == 0 {
			continue
		}
		var record Transaction
		if err := json.Unmarshal(txt, &record); err != nil {
			return nil, fmt.Errorf("parse error on line %d: %w", line, err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading records: %w", err)
	}
	return records, nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
