package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// IDEncoding selects how scene identifiers are rendered in output
type IDEncoding string

const (
	IDEncodingProduct IDEncoding = "product"
	IDEncodingShort   IDEncoding = "short"
)

// ParseIDEncoding validates an identifier encoding selector
func ParseIDEncoding(s string) (IDEncoding, error) {
	switch IDEncoding(strings.ToLower(s)) {
	case IDEncodingProduct:
		return IDEncodingProduct, nil
	case IDEncodingShort:
		return IDEncodingShort, nil
	default:
		return "", fmt.Errorf("invalid ID encoding %q (expected product or short)", s)
	}
}

// SceneKey is the canonical identity of one acquisition: one sensor over
// one tile on one date. Processing metadata is deliberately excluded, so
// reprocessed products of the same acquisition compare equal.
type SceneKey struct {
	Sensor string
	Tile   Tile
	Date   string // YYYYMMDD
}

// SceneID is a parsed scene identifier. Sensor, Tile and Date are always
// set; the product fields are only present when the identifier was parsed
// from (or resolved to) a full product ID.
type SceneID struct {
	Sensor string // e.g. LT05
	Tile   Tile
	Date   time.Time // acquisition date, UTC

	// Product-only fields, empty unless known
	Level      string // e.g. L1TP
	ProcDate   string // YYYYMMDD
	Collection string // e.g. 01
	Category   string // e.g. T1
}

// Key returns the canonical comparison key
func (s SceneID) Key() SceneKey {
	return SceneKey{Sensor: s.Sensor, Tile: s.Tile, Date: s.Date.Format("20060102")}
}

// HasProductFields reports whether the full product encoding can be emitted
func (s SceneID) HasProductFields() bool {
	return s.Level != "" && s.ProcDate != "" && s.Collection != "" && s.Category != ""
}

// EncodeShort renders the collection-era short form, e.g. LT05_043030_20001014
func (s SceneID) EncodeShort() string {
	return fmt.Sprintf("%s_%03d%03d_%s",
		s.Sensor, s.Tile.Path, s.Tile.Row, s.Date.Format("20060102"))
}

// EncodeProduct renders the full product form. It returns false when the
// product-only fields were never seen for this scene.
func (s SceneID) EncodeProduct() (string, bool) {
	if !s.HasProductFields() {
		return "", false
	}
	return fmt.Sprintf("%s_%s_%03d%03d_%s_%s_%s_%s",
		s.Sensor, s.Level, s.Tile.Path, s.Tile.Row,
		s.Date.Format("20060102"), s.ProcDate, s.Collection, s.Category), true
}

// Encode renders the identifier in the requested encoding, falling back to
// the short form when the product fields are unknown. The bool reports
// whether the requested encoding was honored.
func (s SceneID) Encode(enc IDEncoding) (string, bool) {
	if enc == IDEncodingProduct {
		if id, ok := s.EncodeProduct(); ok {
			return id, true
		}
		return s.EncodeShort(), false
	}
	return s.EncodeShort(), true
}

// ParseSceneID parses a scene identifier token in any supported encoding.
// Candidate formats are tried in priority order: full product ID, short
// collection ID, legacy pre-collection scene ID. Returns an error wrapping
// ErrUnrecognizedFormat when none match.
func ParseSceneID(token string) (SceneID, error) {
	token = strings.TrimSpace(token)

	if id, ok := parseProductID(token); ok {
		return id, nil
	}
	if id, ok := parseShortID(token); ok {
		return id, nil
	}
	if id, ok := parseLegacyID(token); ok {
		return id, nil
	}
	return SceneID{}, fmt.Errorf("%w: %q", ErrUnrecognizedFormat, token)
}

// ResolveStem derives a scene identity from a quicklook filename stem using
// the tile of the containing folder. Identifier-form stems stand alone;
// download-form stems (YYYYMMDD_DOY_SENSOR) need the tile for canonical
// identity.
func ResolveStem(stem string, tile Tile) (SceneID, error) {
	if id, err := ParseSceneID(stem); err == nil {
		return id, nil
	}
	if id, ok := parseQuicklookStem(stem, tile); ok {
		return id, nil
	}
	return SceneID{}, fmt.Errorf("%w: %q", ErrUnrecognizedFormat, stem)
}

// parseProductID matches e.g. LT05_L1TP_043030_20001014_20160922_01_T1
func parseProductID(token string) (SceneID, bool) {
	parts := strings.Split(token, "_")
	if len(parts) != 7 {
		return SceneID{}, false
	}
	sensor, level, pathRow, acqDate := parts[0], parts[1], parts[2], parts[3]
	procDate, collection, category := parts[4], parts[5], parts[6]

	if !validSensor(sensor) || len(level) != 4 ||
		len(procDate) != 8 || !allDigits(procDate) ||
		len(collection) != 2 || !allDigits(collection) ||
		len(category) < 1 || len(category) > 2 {
		return SceneID{}, false
	}
	tile, ok := parsePathRow(pathRow)
	if !ok {
		return SceneID{}, false
	}
	date, ok := parseCompactDate(acqDate)
	if !ok {
		return SceneID{}, false
	}

	return SceneID{
		Sensor:     sensor,
		Tile:       tile,
		Date:       date,
		Level:      level,
		ProcDate:   procDate,
		Collection: collection,
		Category:   category,
	}, true
}

// parseShortID matches e.g. LT05_043030_20001014
func parseShortID(token string) (SceneID, bool) {
	parts := strings.Split(token, "_")
	if len(parts) != 3 {
		return SceneID{}, false
	}
	sensor, pathRow, acqDate := parts[0], parts[1], parts[2]
	if !validSensor(sensor) {
		return SceneID{}, false
	}
	tile, ok := parsePathRow(pathRow)
	if !ok {
		return SceneID{}, false
	}
	date, ok := parseCompactDate(acqDate)
	if !ok {
		return SceneID{}, false
	}
	return SceneID{Sensor: sensor, Tile: tile, Date: date}, true
}

// parseLegacyID matches pre-collection scene IDs, e.g. LT50430302000288EDC00:
// 3-char sensor, path, row, year, day of year, station, version.
func parseLegacyID(token string) (SceneID, bool) {
	if len(token) != 21 || strings.Contains(token, "_") {
		return SceneID{}, false
	}
	sensor3 := token[0:3]
	if sensor3[0] != 'L' || !isDigit(sensor3[2]) {
		return SceneID{}, false
	}
	digits := token[3:16]
	if !allDigits(digits) {
		return SceneID{}, false
	}

	path, _ := strconv.Atoi(token[3:6])
	row, _ := strconv.Atoi(token[6:9])
	year, _ := strconv.Atoi(token[9:13])
	doy, _ := strconv.Atoi(token[13:16])
	if year < 1972 || year > 2099 || doy < 1 || doy > 366 {
		return SceneID{}, false
	}
	tile := Tile{Path: path, Row: row}
	if !tile.Valid() {
		return SceneID{}, false
	}

	date := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, doy-1)
	if date.Year() != year {
		return SceneID{}, false // day of year past the end of the year
	}

	// Promote the 3-char sensor code to the collection-era 4-char form
	// (LT5 -> LT05).
	sensor := sensor3[0:2] + "0" + sensor3[2:3]
	return SceneID{Sensor: sensor, Tile: tile, Date: date}, true
}

// parseQuicklookStem matches the downloader's file naming, e.g.
// 20001014_288_LT05. The tile comes from the folder, not the name.
func parseQuicklookStem(stem string, tile Tile) (SceneID, bool) {
	parts := strings.Split(stem, "_")
	if len(parts) != 3 {
		return SceneID{}, false
	}
	acqDate, doyStr, sensor := parts[0], parts[1], strings.ToUpper(parts[2])
	if len(doyStr) != 3 || !allDigits(doyStr) || !validSensor(sensor) {
		return SceneID{}, false
	}
	date, ok := parseCompactDate(acqDate)
	if !ok {
		return SceneID{}, false
	}
	doy, _ := strconv.Atoi(doyStr)
	if date.YearDay() != doy {
		return SceneID{}, false
	}
	return SceneID{Sensor: sensor, Tile: tile, Date: date}, true
}

func parsePathRow(s string) (Tile, bool) {
	if len(s) != 6 || !allDigits(s) {
		return Tile{}, false
	}
	path, _ := strconv.Atoi(s[0:3])
	row, _ := strconv.Atoi(s[3:6])
	tile := Tile{Path: path, Row: row}
	return tile, tile.Valid()
}

func parseCompactDate(s string) (time.Time, bool) {
	if len(s) != 8 || !allDigits(s) {
		return time.Time{}, false
	}
	date, err := time.ParseInLocation("20060102", s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

// validSensor accepts 4-char collection sensor codes: L + mission letter +
// two digits (e.g. LT05, LE07, LC08).
func validSensor(s string) bool {
	if len(s) != 4 || s[0] != 'L' {
		return false
	}
	switch s[1] {
	case 'T', 'E', 'C', 'O', 'M':
	default:
		return false
	}
	return isDigit(s[2]) && isDigit(s[3])
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return len(s) > 0
}
