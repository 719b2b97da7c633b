package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"clearscene/internal/domain"
)

// Default output file names
const (
	CountsFileName = "clear_scene_counts.txt"
	ClearFileName  = "clear_scenes.txt"
	CloudyFileName = "cloudy_scenes.txt"
)

// WriteOutputs writes the count table and both identifier lists into the
// output folder, replacing any previous run's files.
func WriteOutputs(outputFolder string, result *AggregateResult) error {
	if err := os.MkdirAll(outputFolder, 0755); err != nil {
		return fmt.Errorf("failed to create output folder: %w", err)
	}
	if err := WriteCountTable(filepath.Join(outputFolder, CountsFileName), result.Counts); err != nil {
		return err
	}
	if err := WriteSceneList(filepath.Join(outputFolder, ClearFileName), result.Clear); err != nil {
		return err
	}
	return WriteSceneList(filepath.Join(outputFolder, CloudyFileName), result.Cloudy)
}

// WriteCountTable writes the monthly count table as CSV with header
func WriteCountTable(path string, table domain.CountTable) error {
	var sb strings.Builder
	sb.WriteString(domain.CountTableHeader)
	sb.WriteByte('\n')
	for _, row := range table.Rows() {
		sb.WriteString(row.CSV())
		sb.WriteByte('\n')
	}
	return writeFileAtomic(path, sb.String())
}

// WriteSceneList writes one identifier per line
func WriteSceneList(path string, ids []string) error {
	var sb strings.Builder
	for _, id := range ids {
		sb.WriteString(id)
		sb.WriteByte('\n')
	}
	return writeFileAtomic(path, sb.String())
}

// writeFileAtomic writes to a temp file in the target directory and
// renames it into place, so an interrupted run leaves the previous output
// intact rather than a truncated file.
func writeFileAtomic(path, content string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
