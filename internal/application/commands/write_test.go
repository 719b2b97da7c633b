package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"clearscene/internal/domain"
)

func TestWriteOutputs_RegeneratesAllFiles(t *testing.T) {
	out := t.TempDir()

	// Leftovers from a previous run must be fully replaced.
	stale := filepath.Join(out, ClearFileName)
	if err := os.WriteFile(stale, []byte("OLD_ID\n"), 0644); err != nil {
		t.Fatal(err)
	}

	counts := make(domain.CountTable)
	counts.Add(domain.CountKey{Tile: domain.Tile{Path: 43, Row: 30}, Year: 2000}, time.October)
	result := &AggregateResult{
		Counts: counts,
		Clear:  []string{"LT05_043030_20001014"},
		Cloudy: nil,
	}

	if err := WriteOutputs(out, result); err != nil {
		t.Fatalf("WriteOutputs failed: %v", err)
	}

	clear, err := os.ReadFile(filepath.Join(out, ClearFileName))
	if err != nil {
		t.Fatal(err)
	}
	if string(clear) != "LT05_043030_20001014\n" {
		t.Errorf("clear list = %q", clear)
	}

	// Empty cloudy list still produces the (empty) file.
	cloudy, err := os.ReadFile(filepath.Join(out, CloudyFileName))
	if err != nil {
		t.Fatalf("cloudy list not written: %v", err)
	}
	if len(cloudy) != 0 {
		t.Errorf("cloudy list = %q, want empty", cloudy)
	}

	table, err := os.ReadFile(filepath.Join(out, CountsFileName))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(table), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("count table lines = %v", lines)
	}
	if lines[0] != domain.CountTableHeader {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "p043r030,2000,0,0,0,0,0,0,0,0,0,1,0,0" {
		t.Errorf("row = %q", lines[1])
	}

	// No temp files survive the atomic rename.
	entries, err := os.ReadDir(out)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Errorf("leftover temp file %s", e.Name())
		}
	}
}

func TestWriteOutputs_CreatesOutputFolder(t *testing.T) {
	out := filepath.Join(t.TempDir(), "reports", "run1")
	result := &AggregateResult{Counts: make(domain.CountTable)}

	if err := WriteOutputs(out, result); err != nil {
		t.Fatalf("WriteOutputs failed: %v", err)
	}
	for _, name := range []string{CountsFileName, ClearFileName, CloudyFileName} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}
}
