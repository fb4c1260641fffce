package internal

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// defaultYearPattern matches exactly four digits starting with "20",
// covering the years 2000-2099.
var defaultYearPattern = regexp.MustCompile(`^20\d{2}$`)

// YearMatcher decides whether a cell is a year header and, if so, which
// year it marks. The detection rule is pluggable so document conventions
// can change without touching partitioning or extraction.
type YearMatcher func(cell string) (year int, ok bool)

// DefaultYearMatcher matches cells whose trimmed text is exactly a 4-digit
// year beginning "20". Partially numeric cells ("2022年") do not match.
func DefaultYearMatcher(cell string) (int, bool) {
	s := strings.TrimSpace(cell)
	if !defaultYearPattern.MatchString(s) {
		return 0, false
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return year, true
}

// YearMatcherFromPattern builds a matcher from a custom regular expression.
// The pattern is applied to the trimmed cell text and must match a string
// that parses as an integer year.
func YearMatcherFromPattern(expr string) (YearMatcher, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid year pattern %q: %w", expr, err)
	}
	return func(cell string) (int, bool) {
		s := strings.TrimSpace(cell)
		if !re.MatchString(s) {
			return 0, false
		}
		year, err := strconv.Atoi(s)
		if err != nil {
			return 0, false
		}
		return year, true
	}, nil
}

// LocateYears scans the grid for year headers and returns their marks
// ordered by (row, col) ascending. That ordering is the tie-break wherever
// "first occurrence" matters downstream.
func LocateYears(g Grid, match YearMatcher) []YearMark {
	if match == nil {
		match = DefaultYearMatcher
	}
	var marks []YearMark
	for r := 0; r < g.NumRows(); r++ {
		for c := range g.Row(r) {
			if year, ok := match(g.Cell(r, c)); ok {
				marks = append(marks, YearMark{Row: r, Col: c, Year: year})
			}
		}
	}
	return marks
}
