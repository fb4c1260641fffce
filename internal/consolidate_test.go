package internal

import (
	"reflect"
	"testing"
)

func contribution(year int, items ...interface{}) BlockTable {
	bt := BlockTable{Year: year, Values: make(map[ItemKey]float64)}
	for i := 0; i+1 < len(items); i += 2 {
		key := items[i].(ItemKey)
		bt.Values[key] = items[i+1].(float64)
		bt.Order = append(bt.Order, key)
	}
	return bt
}

func TestConsolidateRoundTrip(t *testing.T) {
	// Two year marks: 2022 with Revenue=100, Other=5, Other=3;
	// 2023 with Revenue=120, Other=4.
	contribs := []BlockTable{
		contribution(2022,
			ItemKey{Name: "Revenue"}, 100.0,
			ItemKey{Name: "Other", Occurrence: 0}, 5.0,
			ItemKey{Name: "Other", Occurrence: 1}, 3.0,
		),
		contribution(2023,
			ItemKey{Name: "Revenue"}, 120.0,
			ItemKey{Name: "Other", Occurrence: 0}, 4.0,
		),
	}

	tbl := Consolidate(contribs, MergeFirstWins)

	if !reflect.DeepEqual(tbl.Items, []string{"Revenue", "Other"}) {
		t.Errorf("items = %v", tbl.Items)
	}
	if !reflect.DeepEqual(tbl.Years, []int{2022, 2023}) {
		t.Errorf("years = %v", tbl.Years)
	}
	if got := tbl.Value("Revenue", 2022); got != 100 {
		t.Errorf("Revenue 2022 = %v, want 100", got)
	}
	if got := tbl.Value("Revenue", 2023); got != 120 {
		t.Errorf("Revenue 2023 = %v, want 120", got)
	}
	if got := tbl.Value("Other", 2022); got != 8 {
		t.Errorf("Other 2022 = %v, want 8 (sentinel occurrences summed)", got)
	}
	if got := tbl.Value("Other", 2023); got != 4 {
		t.Errorf("Other 2023 = %v, want 4", got)
	}
}

func TestConsolidateIdempotence(t *testing.T) {
	base := contribution(2022,
		ItemKey{Name: "Revenue"}, 100.0,
		ItemKey{Name: "Cost"}, 60.0,
	)

	t.Run("precedence merge is idempotent", func(t *testing.T) {
		tbl := Consolidate([]BlockTable{base, base}, MergeFirstWins)
		if got := tbl.Value("Revenue", 2022); got != 100 {
			t.Errorf("Revenue = %v, want 100", got)
		}
		if got := tbl.Value("Cost", 2022); got != 60 {
			t.Errorf("Cost = %v, want 60", got)
		}
	})

	t.Run("sum merge doubles every cell", func(t *testing.T) {
		tbl := Consolidate([]BlockTable{base, base}, MergeSum)
		if got := tbl.Value("Revenue", 2022); got != 200 {
			t.Errorf("Revenue = %v, want 200", got)
		}
		if got := tbl.Value("Cost", 2022); got != 120 {
			t.Errorf("Cost = %v, want 120", got)
		}
	})
}

func TestConsolidateDuplicateYearSum(t *testing.T) {
	// The same year appearing in two source files combines under sum merge.
	contribs := []BlockTable{
		contribution(2022, ItemKey{Name: "Revenue"}, 100.0),
		contribution(2022, ItemKey{Name: "Revenue"}, 40.0),
	}

	tbl := Consolidate(contribs, MergeSum)
	if got := tbl.Value("Revenue", 2022); got != 140 {
		t.Errorf("Revenue 2022 = %v, want 140", got)
	}
}

func TestConsolidateMissingYearZeroFill(t *testing.T) {
	contribs := []BlockTable{
		contribution(2022, ItemKey{Name: "Revenue"}, 100.0),
		contribution(2023, ItemKey{Name: "Cost"}, 60.0),
	}

	tbl := Consolidate(contribs, MergeFirstWins)

	if !reflect.DeepEqual(tbl.Items, []string{"Revenue", "Cost"}) {
		t.Errorf("items = %v", tbl.Items)
	}
	for _, item := range tbl.Items {
		for _, year := range tbl.Years {
			if _, ok := tbl.Values[item][year]; !ok {
				t.Errorf("missing cell (%s, %d)", item, year)
			}
		}
	}
	if got := tbl.Value("Revenue", 2023); got != 0 {
		t.Errorf("Revenue 2023 = %v, want 0", got)
	}
	if got := tbl.Value("Cost", 2022); got != 0 {
		t.Errorf("Cost 2022 = %v, want 0", got)
	}
}

func TestConsolidateYearsAscending(t *testing.T) {
	contribs := []BlockTable{
		contribution(2024, ItemKey{Name: "Revenue"}, 1.0),
		contribution(2020, ItemKey{Name: "Revenue"}, 2.0),
		contribution(2022, ItemKey{Name: "Revenue"}, 3.0),
	}

	tbl := Consolidate(contribs, MergeFirstWins)
	if !reflect.DeepEqual(tbl.Years, []int{2020, 2022, 2024}) {
		t.Errorf("years = %v, want ascending", tbl.Years)
	}
}

func TestConsolidateOtherConservation(t *testing.T) {
	// Sentinel rows bypass precedence dedup and are summed at assembly,
	// even under first-wins merge.
	contribs := []BlockTable{
		contribution(2022,
			ItemKey{Name: "その他", Occurrence: 0}, 5.0,
			ItemKey{Name: "その他", Occurrence: 1}, 3.0,
		),
		contribution(2022,
			ItemKey{Name: "その他", Occurrence: 0}, 7.0,
		),
	}

	t.Run("first-wins keeps per-occurrence precedence", func(t *testing.T) {
		tbl := Consolidate(contribs, MergeFirstWins)
		// Occurrence 0 resolves to the first contribution's 5; occurrence 1
		// only exists once. Collapse sums 5 + 3.
		if got := tbl.Value("その他", 2022); got != 8 {
			t.Errorf("その他 2022 = %v, want 8", got)
		}
	})

	t.Run("sum merge keeps every source row", func(t *testing.T) {
		tbl := Consolidate(contribs, MergeSum)
		if got := tbl.Value("その他", 2022); got != 15 {
			t.Errorf("その他 2022 = %v, want 15", got)
		}
	})

	t.Run("no residual disambiguation artifacts", func(t *testing.T) {
		tbl := Consolidate(contribs, MergeFirstWins)
		if len(tbl.Items) != 1 || tbl.Items[0] != "その他" {
			t.Errorf("items = %v, want collapsed to その他 only", tbl.Items)
		}
	})
}

func TestConsolidateMasterOrder(t *testing.T) {
	contribs := []BlockTable{
		contribution(2022,
			ItemKey{Name: "売上高"}, 1.0,
			ItemKey{Name: "営業利益"}, 2.0,
		),
		contribution(2023,
			ItemKey{Name: "売上高"}, 3.0,
			ItemKey{Name: "経常利益"}, 4.0,
		),
	}

	tbl := Consolidate(contribs, MergeFirstWins)
	expected := []string{"売上高", "営業利益", "経常利益"}
	if !reflect.DeepEqual(tbl.Items, expected) {
		t.Errorf("items = %v, want first-seen order %v", tbl.Items, expected)
	}
}

func TestConsolidateEmpty(t *testing.T) {
	tbl := Consolidate(nil, MergeFirstWins)
	if len(tbl.Items) != 0 || len(tbl.Years) != 0 {
		t.Errorf("expected empty table, got %v", tbl)
	}
}
