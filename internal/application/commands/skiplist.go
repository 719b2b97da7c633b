package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"clearscene/internal/application"
	"clearscene/internal/domain"
)

// LoadSkipList reads a skip-list file: one identifier per line, any
// supported encoding, comments starting with #. Lines that fail
// normalization are reported as warnings and ignored; only a missing or
// unreadable file is an error.
func LoadSkipList(path string) (map[domain.SceneKey]bool, application.Warnings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open skip list: %w", err)
	}
	defer f.Close()

	skip := make(map[domain.SceneKey]bool)
	var warnings application.Warnings

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		id, err := domain.ParseSceneID(line)
		if err != nil {
			warnings.Addf("skip list line %d: ignoring unrecognized identifier %q", lineNo, line)
			continue
		}
		skip[id.Key()] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, warnings, fmt.Errorf("failed to read skip list: %w", err)
	}
	return skip, warnings, nil
}
