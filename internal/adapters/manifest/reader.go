package manifest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/pgzip"

	"clearscene/internal/domain"
)

// Column names in the USGS bulk-metadata exports
const (
	productIDColumn = "LANDSAT_PRODUCT_ID"
	sceneIDColumn   = "LANDSAT_SCENE_ID"
)

// Reader resolves canonical scene identities to their full product
// identifiers using metadata manifest CSVs. It implements
// ports.ProductResolver.
type Reader struct {
	byKey map[domain.SceneKey]domain.SceneID
}

// Load reads every manifest CSV in a folder. Plain .csv and
// gzip-compressed .csv.gz files are both accepted; other files are
// ignored. An empty folder yields an empty (but usable) resolver.
func Load(folder string) (*Reader, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest folder: %w", err)
	}

	r := &Reader{byKey: make(map[domain.SceneKey]domain.SceneID)}
	for _, entry := range entries {
		if entry.IsDir() || !isManifestFile(entry.Name()) {
			continue
		}
		if err := r.loadFile(filepath.Join(folder, entry.Name())); err != nil {
			return nil, fmt.Errorf("manifest %s: %w", entry.Name(), err)
		}
	}
	return r, nil
}

// LoadFiles reads an explicit list of manifest CSVs
func LoadFiles(paths ...string) (*Reader, error) {
	r := &Reader{byKey: make(map[domain.SceneKey]domain.SceneID)}
	for _, path := range paths {
		if err := r.loadFile(path); err != nil {
			return nil, fmt.Errorf("manifest %s: %w", filepath.Base(path), err)
		}
	}
	return r, nil
}

// Resolve returns the full product identity for a canonical key
func (r *Reader) Resolve(key domain.SceneKey) (domain.SceneID, bool) {
	id, ok := r.byKey[key]
	return id, ok
}

// Len returns the number of distinct acquisitions loaded
func (r *Reader) Len() int {
	return len(r.byKey)
}

func isManifestFile(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".csv") || strings.HasSuffix(lower, ".csv.gz")
}

func (r *Reader) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var src io.Reader = f
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		gz, err := pgzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("failed to open gzip stream: %w", err)
		}
		defer gz.Close()
		src = gz
	}

	cr := csv.NewReader(src)
	cr.ReuseRecord = true
	cr.FieldsPerRecord = -1 // the exports vary in column count across collections

	header, err := cr.Read()
	if err == io.EOF {
		return nil // empty file, nothing to load
	}
	if err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}

	productCol := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), productIDColumn) {
			productCol = i
			break
		}
	}
	if productCol == -1 {
		return fmt.Errorf("column %s not found (is this the unfiltered metadata export?)", productIDColumn)
	}

	for {
		record, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read row: %w", err)
		}
		if productCol >= len(record) {
			continue
		}

		id, err := domain.ParseSceneID(record[productCol])
		if err != nil || !id.HasProductFields() {
			continue // tolerate malformed rows, the manifest is advisory
		}
		r.byKey[id.Key()] = id
	}
}
