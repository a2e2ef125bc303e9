package weightcol

import (
	"fmt"
	"sync"
)

// MemStore is an in-memory RowStore for tests, examples and tooling.
// Rows that were never written read back as all-zero buffers, matching
// the behavior of a freshly allocated table.
type MemStore struct {
	mu   sync.RWMutex
	rows map[uint64][]byte
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{rows: make(map[uint64][]byte)}
}

// ReadRow copies the stored row into buf. A missing row zero-fills buf.
func (m *MemStore) ReadRow(row uint64, buf []byte) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stored, ok := m.rows[row]
	if !ok {
		for i := range buf {
			buf[i] = 0
		}
		return nil
	}
	if len(stored) != len(buf) {
		return fmt.Errorf("weightcol: row %d stride changed: stored %d bytes, want %d",
			row, len(stored), len(buf))
	}

	copy(buf, stored)
	return nil
}

// WriteRow stores a copy of buf as the row contents.
func (m *MemStore) WriteRow(row uint64, buf []byte) error {
	stored := append([]byte(nil), buf...)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[row] = stored
	return nil
}

// Len returns the number of rows written so far.
func (m *MemStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rows)
}
