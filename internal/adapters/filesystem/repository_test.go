package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"clearscene/internal/domain"
)

func setupTestCatalog(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	mkdirs := []string{
		"p043r030/2000",
		"p043r030/2000/cloudy",
		"p043r030/2015",
		"p042r034/1999",
		"notes", // ignored: not a tile
	}
	for _, dir := range mkdirs {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}

	files := []string{
		"p043r030/2000/LT05_043030_20001014.jpg",
		"p043r030/2000/LT05_043030_20000406.jpg",
		"p043r030/2000/cloudy/LT05_043030_20000508.jpg",
		"p043r030/2000/thumbs.db", // ignored: not an image
		"p042r034/1999/LE70420341999365EDC00.jpg",
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(root, f), []byte("jpg"), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", f, err)
		}
	}
	return root
}

func TestListTiles(t *testing.T) {
	repo := NewRepository(setupTestCatalog(t))

	tiles, err := repo.ListTiles()
	if err != nil {
		t.Fatalf("ListTiles failed: %v", err)
	}
	if len(tiles) != 2 {
		t.Fatalf("got %d tiles, want 2: %v", len(tiles), tiles)
	}
	if tiles[0].String() != "p042r034" || tiles[1].String() != "p043r030" {
		t.Errorf("tiles not sorted by path/row: %v", tiles)
	}
}

func TestListTiles_MissingRoot(t *testing.T) {
	repo := NewRepository(filepath.Join(t.TempDir(), "nope"))
	if _, err := repo.ListTiles(); err == nil {
		t.Error("expected error for missing root")
	}
}

func TestListYears(t *testing.T) {
	repo := NewRepository(setupTestCatalog(t))
	tile := domain.Tile{Path: 43, Row: 30}

	years, err := repo.ListYears(tile)
	if err != nil {
		t.Fatalf("ListYears failed: %v", err)
	}
	if len(years) != 2 || years[0] != 2000 || years[1] != 2015 {
		t.Errorf("years = %v, want [2000 2015]", years)
	}

	// A tile directory that is simply absent yields no years.
	years, err = repo.ListYears(domain.Tile{Path: 99, Row: 99})
	if err != nil || years != nil {
		t.Errorf("missing tile: years=%v err=%v, want nil/nil", years, err)
	}
}

func TestListScenes_ClassifiesByFolder(t *testing.T) {
	repo := NewRepository(setupTestCatalog(t))
	tile := domain.Tile{Path: 43, Row: 30}

	scenes, err := repo.ListScenes(tile, 2000)
	if err != nil {
		t.Fatalf("ListScenes failed: %v", err)
	}
	if len(scenes) != 3 {
		t.Fatalf("got %d scenes, want 3 (thumbs.db excluded): %v", len(scenes), scenes)
	}

	byName := make(map[string]domain.Classification)
	for _, s := range scenes {
		byName[s.Name] = s.Classification
		if s.Tile != tile || s.Year != 2000 {
			t.Errorf("scene %s carries wrong tile/year: %v/%d", s.Name, s.Tile, s.Year)
		}
	}
	if byName["LT05_043030_20001014.jpg"] != domain.Clear {
		t.Error("year-folder file not classified clear")
	}
	if byName["LT05_043030_20000508.jpg"] != domain.Cloudy {
		t.Error("cloudy-folder file not classified cloudy")
	}
}

func TestListScenes_MissingCloudyFolder(t *testing.T) {
	repo := NewRepository(setupTestCatalog(t))

	// p043r030/2015 exists but has no files and no cloudy subfolder.
	scenes, err := repo.ListScenes(domain.Tile{Path: 43, Row: 30}, 2015)
	if err != nil {
		t.Fatalf("ListScenes failed: %v", err)
	}
	if len(scenes) != 0 {
		t.Errorf("got %d scenes, want 0", len(scenes))
	}
}

func TestMoveScene_RoundTrip(t *testing.T) {
	root := setupTestCatalog(t)
	repo := NewRepository(root)
	tile := domain.Tile{Path: 42, Row: 34}

	scenes, err := repo.ListScenes(tile, 1999)
	if err != nil {
		t.Fatalf("ListScenes failed: %v", err)
	}
	if len(scenes) != 1 || scenes[0].Classification != domain.Clear {
		t.Fatalf("unexpected fixture state: %v", scenes)
	}

	// Clear -> cloudy creates the cloudy folder on demand.
	moved, err := repo.MoveScene(scenes[0])
	if err != nil {
		t.Fatalf("MoveScene failed: %v", err)
	}
	if moved.Classification != domain.Cloudy {
		t.Errorf("classification = %v, want cloudy", moved.Classification)
	}
	wantPath := filepath.Join(root, "p042r034/1999/cloudy", scenes[0].Name)
	if moved.Path != wantPath {
		t.Errorf("path = %s, want %s", moved.Path, wantPath)
	}
	if _, err := os.Stat(wantPath); err != nil {
		t.Errorf("moved file missing: %v", err)
	}

	// And back.
	back, err := repo.MoveScene(moved)
	if err != nil {
		t.Fatalf("MoveScene back failed: %v", err)
	}
	if back.Classification != domain.Clear {
		t.Errorf("classification = %v, want clear", back.Classification)
	}
	if _, err := os.Stat(back.Path); err != nil {
		t.Errorf("restored file missing: %v", err)
	}
}
