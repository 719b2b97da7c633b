package commands

import (
	"context"
	"fmt"
	"sort"

	"clearscene/internal/application"
	"clearscene/internal/domain"
	"clearscene/internal/ports"
)

// AggregateResult is the output of one scene-count run
type AggregateResult struct {
	Counts domain.CountTable
	Clear  []string // encoded identifiers, sorted by tile, date, sensor
	Cloudy []string

	Warnings application.Warnings
}

// CountScenesCommand walks the catalog and produces the monthly
// clear-scene count table plus the clear and cloudy identifier lists.
// Everything is recomputed from the current directory state.
type CountScenesCommand struct {
	repo     ports.CatalogRepository
	resolver ports.ProductResolver // optional, upgrades IDs to product form

	Tiles    []domain.Tile // optional tile filter
	Years    domain.YearSet
	SkipList map[domain.SceneKey]bool // identities forced cloudy
	Encoding domain.IDEncoding
}

// NewCountScenesCommand creates a new CountScenesCommand
func NewCountScenesCommand(repo ports.CatalogRepository, encoding domain.IDEncoding) *CountScenesCommand {
	return &CountScenesCommand{repo: repo, Encoding: encoding}
}

// WithResolver attaches a manifest-backed product resolver
func (c *CountScenesCommand) WithResolver(r ports.ProductResolver) *CountScenesCommand {
	c.resolver = r
	return c
}

// Validate checks the command configuration
func (c *CountScenesCommand) Validate() error {
	if c.Encoding != domain.IDEncodingProduct && c.Encoding != domain.IDEncodingShort {
		return &application.ValidationError{
			Field:   "encoding",
			Message: fmt.Sprintf("invalid ID encoding %q (expected product or short)", c.Encoding),
		}
	}
	return nil
}

// listedScene carries sort context for one output list entry
type listedScene struct {
	tile domain.Tile
	id   domain.SceneID
}

// Execute runs the aggregation
func (c *CountScenesCommand) Execute(ctx context.Context) (*AggregateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	tiles, err := c.repo.ListTiles()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", application.ErrMissingRoot, err)
	}

	result := &AggregateResult{Counts: make(domain.CountTable)}
	var clearOut, cloudyOut []listedScene

	for _, tile := range tiles {
		if !c.tileSelected(tile) {
			continue
		}
		years, err := c.repo.ListYears(tile)
		if err != nil {
			return nil, err
		}
		for _, year := range years {
			if !c.Years.Contains(year) {
				continue
			}
			clear, cloudy := c.aggregateYear(tile, year, result)
			clearOut = append(clearOut, clear...)
			cloudyOut = append(cloudyOut, cloudy...)
		}
	}

	result.Clear = c.encodeList(clearOut, result)
	result.Cloudy = c.encodeList(cloudyOut, result)
	return result, nil
}

// aggregateYear classifies and counts one tile/year folder pair. The folder
// pair always yields a count row, even when empty.
func (c *CountScenesCommand) aggregateYear(tile domain.Tile, year int, result *AggregateResult) (clear, cloudy []listedScene) {
	key := domain.CountKey{Tile: tile, Year: year}
	result.Counts.Ensure(key)

	files, err := c.repo.ListScenes(tile, year)
	if err != nil {
		result.Warnings.Addf("%s/%d: %v", tile, year, err)
		return nil, nil
	}

	clearSet := make(map[domain.SceneKey]domain.SceneID)
	cloudySet := make(map[domain.SceneKey]domain.SceneID)

	for _, file := range files {
		id, err := domain.ResolveStem(file.Stem(), tile)
		if err != nil {
			result.Warnings.Addf("%s/%d: skipping %s: unrecognized identifier", tile, year, file.Name)
			continue
		}
		if id.Tile != tile {
			result.Warnings.Addf("%s/%d: %s names tile %s but sits in this folder; counting it here",
				tile, year, file.Name, id.Tile)
		}
		if file.Classification == domain.Cloudy {
			mergeScene(cloudySet, id)
		} else {
			mergeScene(clearSet, id)
		}
	}

	// Cloudy dominates: a scene found in both locations is questionable,
	// and questionable scenes are excluded from the clear counts.
	for k := range clearSet {
		if _, both := cloudySet[k]; both {
			result.Warnings.Addf("%s/%d: %s found in both clear and cloudy locations, classified cloudy",
				tile, year, k.Sensor+"_"+k.Date)
			delete(clearSet, k)
		}
	}

	// The skip list forces known-bad scenes cloudy wherever they sit.
	for k, id := range clearSet {
		if c.SkipList[k] {
			delete(clearSet, k)
			mergeScene(cloudySet, id)
		}
	}

	for _, id := range clearSet {
		result.Counts.Add(key, id.Date.Month())
		clear = append(clear, listedScene{tile: tile, id: id})
	}
	for _, id := range cloudySet {
		cloudy = append(cloudy, listedScene{tile: tile, id: id})
	}
	return clear, cloudy
}

// mergeScene deduplicates by canonical identity, preferring the entry that
// carries product fields
func mergeScene(set map[domain.SceneKey]domain.SceneID, id domain.SceneID) {
	key := id.Key()
	if existing, ok := set[key]; ok {
		if existing.HasProductFields() || !id.HasProductFields() {
			return
		}
	}
	set[key] = id
}

// encodeList sorts entries by tile, acquisition date, then sensor, and
// renders them in the selected encoding
func (c *CountScenesCommand) encodeList(scenes []listedScene, result *AggregateResult) []string {
	sort.Slice(scenes, func(i, j int) bool {
		a, b := scenes[i], scenes[j]
		if a.tile != b.tile {
			return a.tile.Less(b.tile)
		}
		if !a.id.Date.Equal(b.id.Date) {
			return a.id.Date.Before(b.id.Date)
		}
		return a.id.Sensor < b.id.Sensor
	})

	out := make([]string, 0, len(scenes))
	for _, s := range scenes {
		id := s.id
		if c.Encoding == domain.IDEncodingProduct && !id.HasProductFields() && c.resolver != nil {
			if resolved, ok := c.resolver.Resolve(id.Key()); ok {
				id = resolved
			}
		}
		encoded, honored := id.Encode(c.Encoding)
		if !honored {
			result.Warnings.Addf("no product identity known for %s, using short form", encoded)
		}
		out = append(out, encoded)
	}
	return out
}

func (c *CountScenesCommand) tileSelected(tile domain.Tile) bool {
	if len(c.Tiles) == 0 {
		return true
	}
	for _, t := range c.Tiles {
		if t == tile {
			return true
		}
	}
	return false
}
