package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// MaxRecords is the size of the high-score table
const MaxRecords = 10

// Record is one finished playthrough
type Record struct {
	Session string    `msgpack:"session"`
	Score   int       `msgpack:"score"`
	Stage   int       `msgpack:"stage"`
	At      time.Time `msgpack:"at"`
}

// NewRecord creates a record for a session id
func NewRecord(id uuid.UUID, score, stage int, at time.Time) Record {
	return Record{Session: id.String(), Score: score, Stage: stage, At: at}
}

type tableFile struct {
	Version int      `msgpack:"version"`
	Records []Record `msgpack:"records"`
}

const fileVersion = 1

// Table is a ranked, size-bounded high-score list persisted as msgpack
type Table struct {
	mu      sync.RWMutex
	path    string
	records []Record
}

// Open loads a table; a missing file yields an empty table
func Open(path string) (*Table, error) {
	t := &Table{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return t, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read high scores: %w", err)
	}

	var f tableFile
	if err := msgpack.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode high scores %s: %w", path, err)
	}
	t.records = f.Records
	t.sortAndTrim()
	return t, nil
}

func (t *Table) sortAndTrim() {
	sort.SliceStable(t.records, func(i, j int) bool {
		return t.records[i].Score > t.records[j].Score
	})
	if len(t.records) > MaxRecords {
		t.records = t.records[:MaxRecords]
	}
}

// Add inserts a record and returns its 1-based rank, or false if it did not make the table
func (t *Table) Add(r Record) (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.records = append(t.records, r)
	t.sortAndTrim()
	for i := range t.records {
		if t.records[i] == r {
			return i + 1, true
		}
	}
	return 0, false
}

// Best returns the top record
func (t *Table) Best() (Record, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.records) == 0 {
		return Record{}, false
	}
	return t.records[0], true
}

// Records returns a copy of the table, best first
func (t *Table) Records() []Record {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}

// Save writes the table atomically via a temporary file
func (t *Table) Save() error {
	t.mu.RLock()
	data, err := msgpack.Marshal(&tableFile{Version: fileVersion, Records: t.records})
	t.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encode high scores: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
		return fmt.Errorf("create high score dir: %w", err)
	}
	tmp := t.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write high scores: %w", err)
	}
	if err := os.Rename(tmp, t.path); err != nil {
		return fmt.Errorf("replace high scores: %w", err)
	}
	return nil
}
