package ports

import "clearscene/internal/domain"

// CatalogIndex is a derived cache of the walked catalog. The directory
// tree stays authoritative; the index exists so listings and counts don't
// re-walk the tree on every query.
type CatalogIndex interface {
	// Lifecycle
	Open(rootPath string) error
	Close() error

	// SyncFull rebuilds the index from a catalog walk
	SyncFull(repo CatalogRepository) (*domain.SyncStats, error)

	// Queries
	Tiles() ([]domain.Tile, error)
	MonthlyCounts(tile domain.Tile, year int) (domain.MonthlyCounts, error)
	ListByClassification(c domain.Classification) ([]string, error)
}
