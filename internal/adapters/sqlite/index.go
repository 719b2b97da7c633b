package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"clearscene/internal/domain"
	"clearscene/internal/ports"
)

// Index implements ports.CatalogIndex using SQLite. It is a derived cache
// of the walked catalog; the directory tree stays authoritative.
type Index struct {
	db       *sql.DB
	rootPath string
	dbPath   string
}

// Ensure Index implements CatalogIndex
var _ ports.CatalogIndex = (*Index)(nil)

// NewIndex creates a new SQLite catalog index
func NewIndex() *Index {
	return &Index{}
}

// Open initializes the index for the given catalog root
func (idx *Index) Open(rootPath string) error {
	// Expand ~ in path
	if strings.HasPrefix(rootPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		rootPath = filepath.Join(home, rootPath[1:])
	}

	idx.rootPath = rootPath
	idx.dbPath = filepath.Join(rootPath, ".clearscene", "index.db")

	if err := os.MkdirAll(filepath.Dir(idx.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	db, err := sql.Open("sqlite3", idx.dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS scenes (
			tile TEXT NOT NULL,
			year INTEGER NOT NULL,
			scene_key TEXT NOT NULL,
			month INTEGER NOT NULL,
			date TEXT NOT NULL,
			sensor TEXT NOT NULL,
			encoded TEXT NOT NULL,
			classification TEXT NOT NULL,
			path TEXT NOT NULL,
			PRIMARY KEY (tile, year, scene_key)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_scenes_classification
			ON scenes(classification, tile, date);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}
	return nil
}

// Close releases the database handle
func (idx *Index) Close() error {
	if idx.db == nil {
		return nil
	}
	err := idx.db.Close()
	idx.db = nil
	return err
}

// Tiles returns the distinct tiles present in the index, sorted
func (idx *Index) Tiles() ([]domain.Tile, error) {
	rows, err := idx.db.Query(`SELECT DISTINCT tile FROM scenes ORDER BY tile`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tiles []domain.Tile
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tile, err := domain.ParseTile(name)
		if err != nil {
			continue
		}
		tiles = append(tiles, tile)
	}
	return tiles, rows.Err()
}

// MonthlyCounts returns the indexed clear-scene counts for one tile/year
func (idx *Index) MonthlyCounts(tile domain.Tile, year int) (domain.MonthlyCounts, error) {
	var counts domain.MonthlyCounts
	rows, err := idx.db.Query(`
		SELECT month, COUNT(*) FROM scenes
		WHERE tile = ? AND year = ? AND classification = 'clear'
		GROUP BY month`,
		tile.String(), year)
	if err != nil {
		return counts, err
	}
	defer rows.Close()

	for rows.Next() {
		var month, n int
		if err := rows.Scan(&month, &n); err != nil {
			return counts, err
		}
		if month >= 1 && month <= 12 {
			counts[month-1] = n
		}
	}
	return counts, rows.Err()
}

// ListByClassification returns encoded identifiers in output order:
// tile, acquisition date, sensor
func (idx *Index) ListByClassification(c domain.Classification) ([]string, error) {
	rows, err := idx.db.Query(`
		SELECT encoded FROM scenes
		WHERE classification = ?
		ORDER BY tile, date, sensor`,
		c.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
