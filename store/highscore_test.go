package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestOpenMissingFile(t *testing.T) {
	tbl, err := Open(filepath.Join(t.TempDir(), "scores.msgpack"))
	if err != nil {
		t.Fatalf("Expected missing file to be fine, got %v", err)
	}
	if _, ok := tbl.Best(); ok {
		t.Error("Expected empty table")
	}
}

func TestAddRanksAndTrims(t *testing.T) {
	tbl, _ := Open(filepath.Join(t.TempDir(), "scores.msgpack"))
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 1; i <= MaxRecords; i++ {
		tbl.Add(NewRecord(uuid.New(), i*100, 1, at))
	}
	if rank, ok := tbl.Add(NewRecord(uuid.New(), 50, 1, at)); ok {
		t.Errorf("Expected a low score to miss the table, got rank %d", rank)
	}

	rank, ok := tbl.Add(NewRecord(uuid.New(), 550, 1, at))
	if !ok || rank != 6 {
		t.Errorf("Expected rank 6, got %d (%t)", rank, ok)
	}
	if n := len(tbl.Records()); n != MaxRecords {
		t.Errorf("Expected %d records, got %d", MaxRecords, n)
	}
	if best, _ := tbl.Best(); best.Score != 1000 {
		t.Errorf("Expected best 1000, got %d", best.Score)
	}
}

func TestSaveAndReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.msgpack")
	tbl, _ := Open(path)
	id := uuid.New()
	tbl.Add(NewRecord(id, 4200, 3, time.Now()))

	if err := tbl.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("Expected temporary file to be renamed away")
	}

	again, err := Open(path)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	best, ok := again.Best()
	if !ok || best.Score != 4200 || best.Stage != 3 || best.Session != id.String() {
		t.Errorf("Expected persisted record, got %+v", best)
	}
}

func TestOpenCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.msgpack")
	if err := os.WriteFile(path, []byte{0xc1, 0xff, 0x00}, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Error("Expected an error for a corrupt file")
	}
}
