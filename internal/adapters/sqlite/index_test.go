package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"clearscene/internal/adapters/filesystem"
	"clearscene/internal/domain"
)

func setupIndexedCatalog(t *testing.T) (*Index, *filesystem.Repository) {
	t.Helper()
	root := t.TempDir()

	files := map[string]string{
		"p043r030/2000/LT05_043030_20001014.jpg":        "",
		"p043r030/2000/LT05_043030_20001001.jpg":        "",
		"p043r030/2000/cloudy/LT05_043030_20000508.jpg": "",
		"p043r030/2000/unreadable-name.jpg":             "",
		"p042r034/2015/LC08_042034_20150712.jpg":        "",
	}
	for path := range files {
		full := filepath.Join(root, path)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("jpg"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	idx := NewIndex()
	if err := idx.Open(root); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { idx.Close() })

	return idx, filesystem.NewRepository(root)
}

func TestSyncFull_IndexesCatalog(t *testing.T) {
	idx, repo := setupIndexedCatalog(t)

	stats, err := idx.SyncFull(repo)
	if err != nil {
		t.Fatalf("SyncFull failed: %v", err)
	}
	if stats.FilesScanned != 5 {
		t.Errorf("FilesScanned = %d, want 5", stats.FilesScanned)
	}
	if stats.ScenesAdded != 4 {
		t.Errorf("ScenesAdded = %d, want 4", stats.ScenesAdded)
	}
	if stats.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1 (the unreadable name)", stats.Skipped)
	}

	tiles, err := idx.Tiles()
	if err != nil {
		t.Fatalf("Tiles failed: %v", err)
	}
	if len(tiles) != 2 || tiles[0].String() != "p042r034" || tiles[1].String() != "p043r030" {
		t.Errorf("tiles = %v", tiles)
	}

	counts, err := idx.MonthlyCounts(domain.Tile{Path: 43, Row: 30}, 2000)
	if err != nil {
		t.Fatalf("MonthlyCounts failed: %v", err)
	}
	if counts[9] != 2 { // October
		t.Errorf("October = %d, want 2", counts[9])
	}
	if counts[4] != 0 { // May scene is cloudy
		t.Errorf("May = %d, want 0", counts[4])
	}

	cloudy, err := idx.ListByClassification(domain.Cloudy)
	if err != nil {
		t.Fatalf("ListByClassification failed: %v", err)
	}
	if len(cloudy) != 1 || cloudy[0] != "LT05_043030_20000508" {
		t.Errorf("cloudy = %v", cloudy)
	}
}

func TestSyncFull_RebuildReplacesStaleRows(t *testing.T) {
	idx, repo := setupIndexedCatalog(t)

	if _, err := idx.SyncFull(repo); err != nil {
		t.Fatalf("first sync failed: %v", err)
	}

	// The operator reclassifies a scene; a rebuild must reflect it.
	scenes, err := repo.ListScenes(domain.Tile{Path: 43, Row: 30}, 2000)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range scenes {
		if s.Name == "LT05_043030_20001014.jpg" {
			if _, err := repo.MoveScene(s); err != nil {
				t.Fatalf("MoveScene failed: %v", err)
			}
		}
	}

	if _, err := idx.SyncFull(repo); err != nil {
		t.Fatalf("second sync failed: %v", err)
	}

	counts, err := idx.MonthlyCounts(domain.Tile{Path: 43, Row: 30}, 2000)
	if err != nil {
		t.Fatal(err)
	}
	if counts[9] != 1 {
		t.Errorf("October after reclassification = %d, want 1", counts[9])
	}

	clear, err := idx.ListByClassification(domain.Clear)
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range clear {
		if id == "LT05_043030_20001014" {
			t.Error("reclassified scene still indexed clear")
		}
	}
}
