package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Classification is the clear/cloudy state of a scene, encoded entirely by
// the scene file's location relative to the year folder's cloudy subfolder.
type Classification int

const (
	Clear Classification = iota
	Cloudy
)

func (c Classification) String() string {
	if c == Cloudy {
		return "cloudy"
	}
	return "clear"
}

// CountKey identifies one row of the monthly count table
type CountKey struct {
	Tile Tile
	Year int
}

// MonthlyCounts holds clear-scene counts for January through December
type MonthlyCounts [12]int

// Total returns the sum over all twelve months
func (m MonthlyCounts) Total() int {
	total := 0
	for _, n := range m {
		total += n
	}
	return total
}

// CountTable maps tile/year pairs to their monthly clear-scene counts
type CountTable map[CountKey]*MonthlyCounts

// Ensure creates an all-zero row for the key if none exists. Year folders
// that contain no scenes still get a row.
func (ct CountTable) Ensure(key CountKey) *MonthlyCounts {
	row, ok := ct[key]
	if !ok {
		row = &MonthlyCounts{}
		ct[key] = row
	}
	return row
}

// Add increments the month bucket for one clear acquisition
func (ct CountTable) Add(key CountKey, month time.Month) {
	ct.Ensure(key)[int(month)-1]++
}

// CountRow is one rendered row of the table
type CountRow struct {
	Tile   Tile
	Year   int
	Counts MonthlyCounts
}

// Rows returns the table in output order: tile (path, row), then year
func (ct CountTable) Rows() []CountRow {
	rows := make([]CountRow, 0, len(ct))
	for key, counts := range ct {
		rows = append(rows, CountRow{Tile: key.Tile, Year: key.Year, Counts: *counts})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Tile != rows[j].Tile {
			return rows[i].Tile.Less(rows[j].Tile)
		}
		return rows[i].Year < rows[j].Year
	})
	return rows
}

// CountTableHeader is the first line of the counts output file
const CountTableHeader = "WRS2_TILE,YEAR,JAN,FEB,MAR,APR,MAY,JUN,JUL,AUG,SEP,OCT,NOV,DEC"

// CSV renders the row as one comma-separated line (no trailing newline)
func (r CountRow) CSV() string {
	fields := make([]string, 0, 14)
	fields = append(fields, r.Tile.String(), fmt.Sprintf("%d", r.Year))
	for _, n := range r.Counts {
		fields = append(fields, fmt.Sprintf("%d", n))
	}
	return strings.Join(fields, ",")
}
