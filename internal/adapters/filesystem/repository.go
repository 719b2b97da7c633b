package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"clearscene/internal/domain"
)

// Repository implements ports.CatalogRepository over the quicklook
// directory tree
type Repository struct {
	rootPath string
}

// NewRepository creates a filesystem catalog repository
func NewRepository(rootPath string) *Repository {
	// Expand ~ to home directory
	if strings.HasPrefix(rootPath, "~") {
		home, _ := os.UserHomeDir()
		rootPath = filepath.Join(home, rootPath[1:])
	}
	return &Repository{rootPath: rootPath}
}

// Root returns the catalog root path
func (r *Repository) Root() string {
	return r.rootPath
}

var yearRegex = regexp.MustCompile(`^\d{4}$`)

// ListTiles returns all tile directories under the root, sorted by path
// then row. Entries that don't match pXXXrYYY are ignored.
func (r *Repository) ListTiles() ([]domain.Tile, error) {
	entries, err := os.ReadDir(r.rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog root: %w", err)
	}

	var tiles []domain.Tile
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		tile, err := domain.ParseTile(entry.Name())
		if err != nil {
			continue
		}
		tiles = append(tiles, tile)
	}

	sort.Slice(tiles, func(i, j int) bool {
		return tiles[i].Less(tiles[j])
	})
	return tiles, nil
}

// ListYears returns the 4-digit year directories of a tile, ascending.
// A tile directory that doesn't exist yields no years, not an error.
func (r *Repository) ListYears(tile domain.Tile) ([]int, error) {
	entries, err := os.ReadDir(r.tilePath(tile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read tile %s: %w", tile, err)
	}

	var years []int
	for _, entry := range entries {
		if !entry.IsDir() || !yearRegex.MatchString(entry.Name()) {
			continue
		}
		year, _ := strconv.Atoi(entry.Name())
		years = append(years, year)
	}

	sort.Ints(years)
	return years, nil
}

// ListScenes returns the image files of one tile/year: clear candidates
// directly in the year folder, cloudy candidates in its cloudy subfolder.
func (r *Repository) ListScenes(tile domain.Tile, year int) ([]domain.SceneFile, error) {
	yearPath := r.yearPath(tile, year)

	clear, err := r.listImages(yearPath, tile, year, domain.Clear)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/%d: %w", tile, year, err)
	}

	cloudy, err := r.listImages(filepath.Join(yearPath, domain.CloudyFolderName), tile, year, domain.Cloudy)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s/%d/%s: %w", tile, year, domain.CloudyFolderName, err)
	}

	scenes := append(clear, cloudy...)
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes, nil
}

func (r *Repository) listImages(dir string, tile domain.Tile, year int, c domain.Classification) ([]domain.SceneFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []domain.SceneFile
	for _, entry := range entries {
		if entry.IsDir() || !domain.IsImageFile(entry.Name()) {
			continue
		}
		files = append(files, domain.SceneFile{
			Name:           entry.Name(),
			Path:           filepath.Join(dir, entry.Name()),
			Tile:           tile,
			Year:           year,
			Classification: c,
		})
	}
	return files, nil
}

// MoveScene flips a scene's classification by moving the file between the
// year folder and its cloudy subfolder. This is the mechanical half of the
// manual cloud screening workflow.
func (r *Repository) MoveScene(file domain.SceneFile) (domain.SceneFile, error) {
	yearPath := r.yearPath(file.Tile, file.Year)

	var dstDir string
	var dstClass domain.Classification
	if file.Classification == domain.Clear {
		dstDir = filepath.Join(yearPath, domain.CloudyFolderName)
		dstClass = domain.Cloudy
		if err := os.MkdirAll(dstDir, 0755); err != nil {
			return file, fmt.Errorf("failed to create cloudy folder: %w", err)
		}
	} else {
		dstDir = yearPath
		dstClass = domain.Clear
	}

	dstPath := filepath.Join(dstDir, file.Name)
	if err := os.Rename(file.Path, dstPath); err != nil {
		return file, fmt.Errorf("failed to move %s: %w", file.Name, err)
	}

	moved := file
	moved.Path = dstPath
	moved.Classification = dstClass
	return moved, nil
}

func (r *Repository) tilePath(tile domain.Tile) string {
	return filepath.Join(r.rootPath, tile.String())
}

func (r *Repository) yearPath(tile domain.Tile, year int) string {
	return filepath.Join(r.tilePath(tile), strconv.Itoa(year))
}
