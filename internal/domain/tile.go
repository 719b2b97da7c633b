package domain

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
)

// ErrUnrecognizedFormat is returned when a token matches no supported
// scene identifier encoding.
var ErrUnrecognizedFormat = errors.New("unrecognized scene identifier format")

// Tile is a WRS2 grid cell identified by an integer path/row pair
type Tile struct {
	Path int
	Row  int
}

var tileRegex = regexp.MustCompile(`^p(\d{1,3})r(\d{1,3})$`)

// ParseTile parses a pXXXrYYY tile name. Path and row may be written with
// fewer than three digits; the canonical form is always zero-padded.
func ParseTile(s string) (Tile, error) {
	matches := tileRegex.FindStringSubmatch(s)
	if matches == nil {
		return Tile{}, fmt.Errorf("invalid WRS2 tile: %q", s)
	}
	path, _ := strconv.Atoi(matches[1])
	row, _ := strconv.Atoi(matches[2])
	t := Tile{Path: path, Row: row}
	if !t.Valid() {
		return Tile{}, fmt.Errorf("WRS2 tile out of range: %q", s)
	}
	return t, nil
}

// Valid reports whether path and row are inside the WRS2 grid
func (t Tile) Valid() bool {
	return t.Path >= 1 && t.Path <= 233 && t.Row >= 1 && t.Row <= 248
}

// String renders the canonical zero-padded form, e.g. p043r030
func (t Tile) String() string {
	return fmt.Sprintf("p%03dr%03d", t.Path, t.Row)
}

// Less orders tiles by path, then row
func (t Tile) Less(other Tile) bool {
	if t.Path != other.Path {
		return t.Path < other.Path
	}
	return t.Row < other.Row
}

// ParseTileList parses space/comma separated tile names into a sorted,
// deduplicated list
func ParseTileList(args []string) ([]Tile, error) {
	seen := make(map[Tile]bool)
	var tiles []Tile
	for _, arg := range args {
		for _, tok := range splitListArg(arg) {
			tile, err := ParseTile(tok)
			if err != nil {
				return nil, err
			}
			if !seen[tile] {
				seen[tile] = true
				tiles = append(tiles, tile)
			}
		}
	}
	sort.Slice(tiles, func(i, j int) bool {
		return tiles[i].Less(tiles[j])
	})
	return tiles, nil
}
