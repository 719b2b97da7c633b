package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// SceneFile is one image file discovered in the catalog tree. The
// Classification is derived once from the file's parent directory: files
// directly under <tile>/<year>/ are clear, files under
// <tile>/<year>/cloudy/ are cloudy.
type SceneFile struct {
	Name           string // file name including extension
	Path           string // absolute path
	Tile           Tile
	Year           int
	Classification Classification
}

// Stem returns the file name without its extension
func (f SceneFile) Stem() string {
	return strings.TrimSuffix(f.Name, filepath.Ext(f.Name))
}

// CloudyFolderName is the subfolder a human moves cloudy quicklooks into
const CloudyFolderName = "cloudy"

// ImageExtensions are the file extensions enumerated as scenes
var ImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// IsImageFile reports whether a file name has a recognized image extension
func IsImageFile(name string) bool {
	return ImageExtensions[strings.ToLower(filepath.Ext(name))]
}

// SyncStats summarizes one catalog index rebuild
type SyncStats struct {
	FilesScanned int
	ScenesAdded  int
	Skipped      int
	Duration     time.Duration
}
