package internal

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// JSONOutput is the root JSON output object
type JSONOutput struct {
	Tables []JSONTable `json:"tables"`
	Stats  JSONStats   `json:"stats"`
}

// JSONTable is the JSON form of one consolidated table. Rows are aligned
// with Years: Amounts[i] is the value for Years[i].
type JSONTable struct {
	Name  string    `json:"name"`
	Years []int     `json:"years"`
	Rows  []JSONRow `json:"rows"`
}

type JSONRow struct {
	Item    string    `json:"item"`
	Amounts []float64 `json:"amounts"`
}

// JSONStats carries the run's diagnostic counters
type JSONStats struct {
	Files              int `json:"files"`
	Blocks             int `json:"blocks"`
	BlocksWithoutYears int `json:"blocks_without_years"`
	NonNumericAmounts  int `json:"non_numeric_amounts"`
	EmptyNamesDropped  int `json:"empty_names_dropped"`
}

// PrintResultJSON outputs the consolidated tables in JSON format
func PrintResultJSON(w io.Writer, res *Result) {
	out := JSONOutput{
		Tables: make([]JSONTable, 0, len(res.Tables)),
		Stats: JSONStats{
			Files:              res.Stats.Files,
			Blocks:             res.Stats.Blocks,
			BlocksWithoutYears: res.Stats.BlocksWithoutYears,
			NonNumericAmounts:  res.Stats.NonNumericAmounts,
			EmptyNamesDropped:  res.Stats.EmptyNamesDropped,
		},
	}

	for _, t := range res.Tables {
		jt := JSONTable{Name: t.Name, Years: t.Years}
		if jt.Years == nil {
			jt.Years = []int{}
		}
		for _, item := range t.Items {
			amounts := make([]float64, 0, len(t.Years))
			for _, y := range t.Years {
				amounts = append(amounts, t.Value(item, y))
			}
			jt.Rows = append(jt.Rows, JSONRow{Item: item, Amounts: amounts})
		}
		out.Tables = append(out.Tables, jt)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(out)
}

// PrintTable renders one consolidated table for the terminal.
func PrintTable(w io.Writer, tbl Table, fm Formatter, itemHeader string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(tbl.Name)

	header := table.Row{itemHeader}
	for _, y := range tbl.Years {
		header = append(header, y)
	}
	t.AppendHeader(header)

	for _, item := range tbl.Items {
		row := table.Row{item}
		for _, y := range tbl.Years {
			row = append(row, fm.Amount(tbl.Value(item, y)))
		}
		t.AppendRow(row)
	}

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault

	// Right-align all year columns
	configs := make([]table.ColumnConfig, 0, len(tbl.Years))
	for i := range tbl.Years {
		configs = append(configs, table.ColumnConfig{Number: i + 2, Align: text.AlignRight})
	}
	t.SetColumnConfigs(configs)

	t.Render()
}

// PrintYoYTable renders a year-over-year table with value, delta and
// percentage columns interleaved per year, years ascending. The earliest
// year has no delta or percentage column.
func PrintYoYTable(w io.Writer, yt YoYTable, fm Formatter, cfg *Config) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("%s (%s)", yt.Name, cfg.YoYSheetSuffix))

	header := table.Row{cfg.ItemHeader}
	for i, y := range yt.Years {
		header = append(header, y)
		if i > 0 {
			header = append(header, fmt.Sprintf("%d%s", y, cfg.DeltaSuffix))
			header = append(header, fmt.Sprintf("%d%s", y, cfg.PctSuffix))
		}
	}
	t.AppendHeader(header)

	for _, item := range yt.Items {
		row := table.Row{item}
		for i, y := range yt.Years {
			row = append(row, fm.Amount(yt.Value[item][y]))
			if i > 0 {
				row = append(row, fm.Delta(yt.Delta[item][y]))
				row = append(row, fm.Percent(yt.Pct[item][y]))
			}
		}
		t.AppendRow(row)
	}

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault

	colCount := 1 + len(yt.Years)*3 - 2
	configs := make([]table.ColumnConfig, 0, colCount)
	for i := 2; i <= colCount; i++ {
		configs = append(configs, table.ColumnConfig{Number: i, Align: text.AlignRight})
	}
	t.SetColumnConfigs(configs)

	t.Render()
}
