package internal

// YearMark is a located year header: the cell at (Row, Col) whose trimmed
// text is a 4-digit year. Marks establish where a year's amount column starts.
type YearMark struct {
	Row  int
	Col  int
	Year int
}

// ItemKey identifies one extracted line item. Named items always carry
// Occurrence 0. Rows matching the "other" sentinel label keep their position
// in the source by carrying their 0-based occurrence index, so repeated
// sentinel rows survive dedup as distinct entries until final collapse.
type ItemKey struct {
	Name       string
	Occurrence int
}

// LineItemRecord is the long-format projection of one extracted value.
type LineItemRecord struct {
	Name   string
	Year   int
	Amount float64
}

// BlockTable holds the values extracted under a single year mark.
// Order preserves first-seen item order within the extraction pass.
type BlockTable struct {
	Year   int
	Order  []ItemKey
	Values map[ItemKey]float64
}

// Records returns the block's values in long format. Sentinel occurrences
// collapse to their canonical name here, so callers merging records must
// sum duplicates.
func (b BlockTable) Records() []LineItemRecord {
	records := make([]LineItemRecord, 0, len(b.Order))
	for _, key := range b.Order {
		records = append(records, LineItemRecord{
			Name:   key.Name,
			Year:   b.Year,
			Amount: b.Values[key],
		})
	}
	return records
}

// Table is a consolidated item × year matrix. Items are unique canonical
// names in first-seen order, Years are ascending, and every (item, year)
// cell is populated (zero where no contribution had a value).
type Table struct {
	Name   string
	Items  []string
	Years  []int
	Values map[string]map[int]float64
}

// Value returns the cell for (item, year), 0 if the table has no such cell.
func (t Table) Value(item string, year int) float64 {
	row, ok := t.Values[item]
	if !ok {
		return 0
	}
	return row[year]
}

// YoYTable extends a consolidated table with absolute and percentage
// changes against the previous available year. Delta and Pct have no
// entries for the earliest year. Pct may hold ±Inf or NaN when the prior
// value was zero; renderers show those as a placeholder.
type YoYTable struct {
	Name  string
	Items []string
	Years []int
	Value map[string]map[int]float64
	Delta map[string]map[int]float64
	Pct   map[string]map[int]float64
}
