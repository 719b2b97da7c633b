package application

import "clearscene/internal/domain"

// Re-export domain types for use by adapters
type (
	Tile           = domain.Tile
	SceneID        = domain.SceneID
	SceneKey       = domain.SceneKey
	SceneFile      = domain.SceneFile
	Classification = domain.Classification
	CountTable     = domain.CountTable
	CountRow       = domain.CountRow
	IDEncoding     = domain.IDEncoding
	YearSet        = domain.YearSet
)

const (
	Clear  = domain.Clear
	Cloudy = domain.Cloudy

	IDEncodingProduct = domain.IDEncodingProduct
	IDEncodingShort   = domain.IDEncodingShort
)

// ParseSceneID parses a scene identifier in any supported encoding
func ParseSceneID(token string) (domain.SceneID, error) {
	return domain.ParseSceneID(token)
}

// ParseTile parses a pXXXrYYY tile name
func ParseTile(s string) (domain.Tile, error) {
	return domain.ParseTile(s)
}
