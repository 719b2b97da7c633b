package sqlite

import (
	"fmt"
	"time"

	"clearscene/internal/domain"
	"clearscene/internal/ports"
)

// SyncFull rebuilds the index from a full catalog walk. Within each
// tile/year the walk applies the same semantics as an aggregation run:
// deduplication by canonical identity and cloudy-dominates on conflicts.
func (idx *Index) SyncFull(repo ports.CatalogRepository) (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{}

	tx, err := idx.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin sync transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM scenes`); err != nil {
		return nil, err
	}

	insert, err := tx.Prepare(`
		INSERT OR REPLACE INTO scenes
		(tile, year, scene_key, month, date, sensor, encoded, classification, path)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, err
	}
	defer insert.Close()

	tiles, err := repo.ListTiles()
	if err != nil {
		return nil, err
	}
	for _, tile := range tiles {
		years, err := repo.ListYears(tile)
		if err != nil {
			return nil, err
		}
		for _, year := range years {
			files, err := repo.ListScenes(tile, year)
			if err != nil {
				return nil, err
			}

			type indexed struct {
				id             domain.SceneID
				path           string
				classification domain.Classification
			}
			byKey := make(map[domain.SceneKey]indexed)

			for _, file := range files {
				stats.FilesScanned++
				id, err := domain.ResolveStem(file.Stem(), tile)
				if err != nil {
					stats.Skipped++
					continue
				}
				key := id.Key()
				prev, seen := byKey[key]
				if seen && (prev.classification == domain.Cloudy || file.Classification == domain.Clear) {
					continue
				}
				byKey[key] = indexed{id: id, path: file.Path, classification: file.Classification}
			}

			for key, entry := range byKey {
				_, err := insert.Exec(
					tile.String(), year, keyString(key),
					int(entry.id.Date.Month()), key.Date, key.Sensor,
					entry.id.EncodeShort(), entry.classification.String(), entry.path,
				)
				if err != nil {
					return nil, fmt.Errorf("failed to index %s: %w", entry.path, err)
				}
				stats.ScenesAdded++
			}
		}
	}

	if _, err := tx.Exec(
		`INSERT OR REPLACE INTO meta (key, value) VALUES ('last_sync_time', ?)`,
		time.Now().Unix()); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit sync: %w", err)
	}

	stats.Duration = time.Since(start)
	return stats, nil
}

// keyString renders a canonical identity as a stable index key
func keyString(key domain.SceneKey) string {
	return fmt.Sprintf("%s_%s_%s", key.Sensor, key.Tile, key.Date)
}
