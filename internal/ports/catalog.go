package ports

import "clearscene/internal/domain"

// CatalogRepository enumerates the on-disk quicklook catalog:
// <root>/<tile>/<year>/*.jpg with human-sorted <year>/cloudy/ subfolders.
// The directory tree is the source of truth for clear/cloudy state.
//
// Implementations are not safe for concurrent runs against the same root;
// that is the caller's responsibility.
type CatalogRepository interface {
	// Root returns the catalog root path
	Root() string

	// ListTiles enumerates tile directories matching pXXXrYYY, sorted.
	// Non-matching entries are ignored.
	ListTiles() ([]domain.Tile, error)

	// ListYears enumerates 4-digit year directories of a tile, sorted
	ListYears(tile domain.Tile) ([]int, error)

	// ListScenes enumerates image files of one tile/year, both directly
	// in the year folder (clear) and in its cloudy subfolder (cloudy).
	// A missing cloudy subfolder means zero cloudy scenes.
	ListScenes(tile domain.Tile, year int) ([]domain.SceneFile, error)

	// MoveScene moves a file between the year folder and its cloudy
	// subfolder, flipping its classification. Returns the updated entry.
	MoveScene(file domain.SceneFile) (domain.SceneFile, error)
}

// ProductResolver upgrades a canonical scene identity to its full product
// identifier, when a metadata manifest knows it.
type ProductResolver interface {
	Resolve(key domain.SceneKey) (domain.SceneID, bool)
}
