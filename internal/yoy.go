package internal

// YearOverYear derives, for each year column after the first, the absolute
// delta and percentage change against the previous available year column.
// Gaps in year coverage are allowed; each year compares to whatever column
// precedes it. A zero prior value produces ±Inf (or NaN for 0 → 0), which
// stays in the table and is rendered as a placeholder at display time.
func YearOverYear(t Table) YoYTable {
	yt := YoYTable{
		Name:  t.Name,
		Items: t.Items,
		Years: t.Years,
		Value: t.Values,
		Delta: make(map[string]map[int]float64),
		Pct:   make(map[string]map[int]float64),
	}

	for _, item := range t.Items {
		deltas := make(map[int]float64)
		pcts := make(map[int]float64)
		for i := 1; i < len(t.Years); i++ {
			year, prevYear := t.Years[i], t.Years[i-1]
			v, prev := t.Value(item, year), t.Value(item, prevYear)
			deltas[year] = v - prev
			pcts[year] = (v - prev) / prev * 100
		}
		yt.Delta[item] = deltas
		yt.Pct[item] = pcts
	}
	return yt
}
