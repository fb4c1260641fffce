package internal

import "sort"

// MergePolicy controls how two contributions carrying a value for the same
// item and year are reconciled during consolidation.
type MergePolicy string

const (
	// MergeFirstWins keeps the value from the earliest contribution.
	MergeFirstWins MergePolicy = "first-wins"
	// MergeSum adds values across all contributions.
	MergeSum MergePolicy = "sum"
)

// Consolidate merges per-block contributions into one wide table: outer
// join on item name, union of years, every cell zero-filled. Item order is
// the first-seen order across contributions; years are sorted ascending.
//
// Sentinel occurrences bypass the merge policy's dedup by design and are
// summed back under the shared label at final assembly, even under
// MergeFirstWins.
func Consolidate(contribs []BlockTable, policy MergePolicy) Table {
	var order []ItemKey
	merged := make(map[ItemKey]map[int]float64)
	yearSet := make(map[int]bool)

	for _, bt := range contribs {
		yearSet[bt.Year] = true
		for _, key := range bt.Order {
			row, ok := merged[key]
			if !ok {
				row = make(map[int]float64)
				merged[key] = row
				order = append(order, key)
			}
			if _, exists := row[bt.Year]; exists {
				if policy == MergeSum {
					row[bt.Year] += bt.Values[key]
				}
				continue
			}
			row[bt.Year] = bt.Values[key]
		}
	}

	years := make([]int, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Ints(years)

	// Collapse sentinel occurrences to their canonical name, summing.
	var items []string
	values := make(map[string]map[int]float64)
	for _, key := range order {
		row, ok := values[key.Name]
		if !ok {
			row = make(map[int]float64)
			values[key.Name] = row
			items = append(items, key.Name)
		}
		for y, v := range merged[key] {
			row[y] += v
		}
	}

	// Unconditional zero-fill: every item has a value for every year.
	for _, row := range values {
		for _, y := range years {
			if _, ok := row[y]; !ok {
				row[y] = 0
			}
		}
	}

	return Table{Items: items, Years: years, Values: values}
}
