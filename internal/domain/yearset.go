package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// YearSet restricts a run to specific acquisition years. A nil YearSet
// matches every year.
type YearSet map[int]bool

// Contains reports whether the year is selected. Nil means no filter.
func (ys YearSet) Contains(year int) bool {
	if ys == nil {
		return true
	}
	return ys[year]
}

// ParseYearSet parses space/comma separated years and year ranges,
// e.g. ["1984", "2000-2015"]. Returns nil when no arguments are given.
func ParseYearSet(args []string) (YearSet, error) {
	var ys YearSet
	for _, arg := range args {
		for _, tok := range splitListArg(arg) {
			if ys == nil {
				ys = make(YearSet)
			}
			if err := ys.addToken(tok); err != nil {
				return nil, err
			}
		}
	}
	return ys, nil
}

func (ys YearSet) addToken(tok string) error {
	if year, err := strconv.Atoi(tok); err == nil {
		ys[year] = true
		return nil
	}

	bounds := strings.SplitN(tok, "-", 2)
	if len(bounds) != 2 {
		return fmt.Errorf("invalid year token: %q", tok)
	}
	first, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
	if err != nil {
		return fmt.Errorf("invalid year range: %q", tok)
	}
	last, err := strconv.Atoi(strings.TrimSpace(bounds[1]))
	if err != nil {
		return fmt.Errorf("invalid year range: %q", tok)
	}
	if first > last {
		first, last = last, first
	}
	for y := first; y <= last; y++ {
		ys[y] = true
	}
	return nil
}

// splitListArg splits a CLI list argument on commas and whitespace
func splitListArg(arg string) []string {
	var toks []string
	for _, part := range strings.FieldsFunc(arg, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	}) {
		if part = strings.TrimSpace(part); part != "" {
			toks = append(toks, part)
		}
	}
	return toks
}
