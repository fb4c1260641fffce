package internal

import (
	"strconv"
	"strings"
)

// YearPolicy controls how repeated year headers inside one block are
// handled during extraction.
type YearPolicy string

const (
	// YearFirst keeps only the first mark per year (in (row, col) order);
	// later marks for the same year are ignored.
	YearFirst YearPolicy = "first"
	// YearAll extracts every mark as a distinct pass; duplicate years are
	// reconciled later by the consolidation merge policy.
	YearAll YearPolicy = "all"
)

// ExtractOptions configures a block extraction.
type ExtractOptions struct {
	// OtherLabel is the sentinel item name whose repeated occurrences must
	// stay distinct until final collapse.
	OtherLabel string
	// ItemCol is the column holding item names, conventionally 0.
	ItemCol int
	// YearPolicy selects first-mark-wins or every-mark extraction.
	YearPolicy YearPolicy
	// BoundAtNextMark limits each pass to the rows above the next year
	// header further down the block, instead of running to the block's end.
	BoundAtNextMark bool
}

// ExtractBlock extracts item/value pairs from one block, one single-year
// contribution per retained year mark. Marks must be in (row, col) order as
// produced by LocateYears. A block with no marks yields no contributions.
//
// Within a pass, item names are trimmed, rows with empty names dropped,
// named items deduplicated first-wins, and sentinel rows tagged with their
// occurrence index. Amounts are comma-stripped and coerced to 0 when not
// numeric. Recoverable conditions are counted on stats when non-nil.
func ExtractBlock(g Grid, marks []YearMark, opts ExtractOptions, stats *Stats) []BlockTable {
	if len(marks) == 0 {
		return nil
	}

	var contribs []BlockTable
	seenYears := make(map[int]bool)
	for i, mark := range marks {
		if opts.YearPolicy != YearAll && seenYears[mark.Year] {
			continue
		}
		seenYears[mark.Year] = true

		end := g.NumRows()
		if opts.BoundAtNextMark {
			// The pass ends at the next header row further down, so stacked
			// tables in one block do not bleed into each other. Marks on the
			// same row (side-by-side year columns) share their data rows.
			for _, next := range marks[i+1:] {
				if next.Row > mark.Row {
					end = next.Row
					break
				}
			}
		}

		bt := BlockTable{Year: mark.Year, Values: make(map[ItemKey]float64)}
		otherCount := 0
		for r := mark.Row + 1; r < end; r++ {
			name := strings.TrimSpace(g.Cell(r, opts.ItemCol))
			if name == "" {
				if stats != nil && !g.IsBlankRow(r) {
					stats.EmptyNamesDropped++
				}
				continue
			}

			key := ItemKey{Name: name}
			if name == opts.OtherLabel {
				key.Occurrence = otherCount
				otherCount++
			} else if _, dup := bt.Values[key]; dup {
				// first occurrence wins for named items
				continue
			}

			bt.Values[key] = coerceAmount(g.Cell(r, mark.Col), stats)
			bt.Order = append(bt.Order, key)
		}
		contribs = append(contribs, bt)
	}
	return contribs
}

// coerceAmount parses an amount cell after stripping thousands-separator
// commas. Empty and non-numeric cells become 0.
func coerceAmount(cell string, stats *Stats) float64 {
	s := strings.TrimSpace(strings.ReplaceAll(cell, ",", ""))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if stats != nil {
			stats.NonNumericAmounts++
		}
		return 0
	}
	return v
}
