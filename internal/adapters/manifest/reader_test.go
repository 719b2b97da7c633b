package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/pgzip"

	"clearscene/internal/domain"
)

const manifestCSV = `LANDSAT_PRODUCT_ID,LANDSAT_SCENE_ID,WRS_PATH,WRS_ROW
LT05_L1TP_043030_20001014_20160922_01_T1,LT50430302000288EDC00,43,30
LT05_L1TP_043030_20000406_20160918_01_T1,LT50430302000097EDC00,43,30
not-a-product-id,whatever,1,1
`

func writeManifest(t *testing.T, dir, name string, gzipped bool) {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", name, err)
	}
	defer f.Close()

	if gzipped {
		gz := pgzip.NewWriter(f)
		if _, err := gz.Write([]byte(manifestCSV)); err != nil {
			t.Fatalf("failed to write gzip manifest: %v", err)
		}
		if err := gz.Close(); err != nil {
			t.Fatalf("failed to close gzip writer: %v", err)
		}
		return
	}
	if _, err := f.WriteString(manifestCSV); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
}

func TestLoad_ResolvesProductIdentity(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "LANDSAT_TM_C2_L1.csv", false)
	if err := os.WriteFile(filepath.Join(dir, "README.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	r, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if r.Len() != 2 {
		t.Fatalf("loaded %d acquisitions, want 2 (malformed row dropped)", r.Len())
	}

	key := domain.SceneKey{
		Sensor: "LT05",
		Tile:   domain.Tile{Path: 43, Row: 30},
		Date:   "20001014",
	}
	id, ok := r.Resolve(key)
	if !ok {
		t.Fatal("known acquisition did not resolve")
	}
	product, ok := id.EncodeProduct()
	if !ok || product != "LT05_L1TP_043030_20001014_20160922_01_T1" {
		t.Errorf("resolved product = %q (ok=%v)", product, ok)
	}

	if _, ok := r.Resolve(domain.SceneKey{Sensor: "LT05", Tile: key.Tile, Date: "19990101"}); ok {
		t.Error("unknown acquisition resolved")
	}
}

func TestLoad_GzippedManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "LANDSAT_TM_C2_L1.csv.gz", true)

	r, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if r.Len() != 2 {
		t.Errorf("loaded %d acquisitions from gzip, want 2", r.Len())
	}
}

func TestLoad_MissingProductColumn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.csv")
	if err := os.WriteFile(path, []byte("path,row\n43,30\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("expected error for manifest without product ID column")
	}
}

func TestLoad_MissingFolder(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing manifest folder")
	}
}
