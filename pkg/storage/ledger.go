package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/felixgeelhaar/cowork/pkg/domain/sales"
)

// FileLedger implements sales.Ledger on a single JSON array document. Every
// append re-reads the document, adds one entry and rewrites the whole file;
// every query re-reads it from scratch. One writer is assumed.
type FileLedger struct {
	mu   sync.Mutex
	path string
}

// NewFileLedger creates a ledger stored under root/.cowork/sales.json.
func NewFileLedger(root string) *FileLedger {
	return &FileLedger{path: filepath.Join(root, CoworkDir, SalesFile)}
}

type salesRecord struct {
	ID          string  `json:"id"`
	Date        string  `json:"fecha"`
	Type        string  `json:"tipo"`
	ClientID    string  `json:"cliente_id"`
	Description string  `json:"descripcion"`
	Amount      float64 `json:"monto"`
}

var _ sales.Ledger = (*FileLedger)(nil)

// Append adds an entry to the ledger document.
func (l *FileLedger) Append(entry sales.Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.read()
	if err != nil {
		return err
	}
	records = append(records, salesRecord{
		ID:          entry.ID,
		Date:        formatTimestamp(entry.Timestamp),
		Type:        entry.Type.String(),
		ClientID:    entry.ClientID,
		Description: entry.Description,
		Amount:      entry.Amount,
	})

	if err := os.MkdirAll(filepath.Dir(l.path), 0700); err != nil {
		return fmt.Errorf("create ledger directory: %w", err)
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal ledger: %w", err)
	}
	return os.WriteFile(l.path, data, 0600)
}

// All returns the full ledger history in file order.
func (l *FileLedger) All() ([]sales.Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.read()
	if err != nil {
		return nil, err
	}

	entries := make([]sales.Entry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, sales.Entry{
			ID:          rec.ID,
			Timestamp:   parseTimestamp(rec.Date),
			Type:        sales.Type(rec.Type),
			ClientID:    rec.ClientID,
			Description: rec.Description,
			Amount:      rec.Amount,
		})
	}
	return entries, nil
}

// Path returns the location of the ledger document.
func (l *FileLedger) Path() string {
	return l.path
}

func (l *FileLedger) read() ([]salesRecord, error) {
	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}

	var records []salesRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("unmarshal ledger: %w", err)
	}
	return records, nil
}

// MemoryLedger is an in-memory sales.Ledger for tests and dry runs.
type MemoryLedger struct {
	mu      sync.Mutex
	entries []sales.Entry
}

var _ sales.Ledger = (*MemoryLedger)(nil)

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{}
}

func (l *MemoryLedger) Append(entry sales.Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
	return nil
}

func (l *MemoryLedger) All() ([]sales.Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]sales.Entry, len(l.entries))
	copy(out, l.entries)
	return out, nil
}
