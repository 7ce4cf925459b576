package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/cartrun/internal/games/cartrun"
	"github.com/vovakirdan/cartrun/internal/storage"
)

func TestPrintRunsShowsTotal(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 4; i++ {
		if _, err := store.SaveRun(storage.Run{GameID: cartrun.GameID, Seed: int64(i), TickRate: 60}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := printRuns(&buf, store, 2); err != nil {
		t.Fatalf("printRuns() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Showing 2 of 4 runs.") {
		t.Errorf("listing should report the total, got:\n%s", buf.String())
	}
}

func TestPrintRunsEmpty(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	var buf bytes.Buffer
	if err := printRuns(&buf, store, 20); err != nil {
		t.Fatalf("printRuns() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No runs recorded yet.") {
		t.Errorf("unexpected listing:\n%s", buf.String())
	}
}
