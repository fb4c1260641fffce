package internal

import (
	"fmt"
	"math"
	"strings"

	"github.com/xuri/excelize/v2"
)

// invalidSheetChars are the characters xlsx forbids in worksheet names.
const invalidSheetChars = `:\/?*[]`

// maxSheetNameLen is the xlsx worksheet name limit, in characters.
const maxSheetNameLen = 31

// SanitizeSheetName makes a string usable as an xlsx worksheet name:
// forbidden characters become underscores and the result is truncated to
// the format's length limit.
func SanitizeSheetName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if strings.ContainsRune(invalidSheetChars, r) {
			r = '_'
		}
		b.WriteRune(r)
	}
	runes := []rune(b.String())
	if len(runes) > maxSheetNameLen {
		runes = runes[:maxSheetNameLen]
	}
	s := string(runes)
	if s == "" {
		return "Sheet"
	}
	return s
}

// sheetNamer hands out sanitized, collision-free worksheet names.
type sheetNamer struct {
	used map[string]bool
}

func newSheetNamer() *sheetNamer {
	return &sheetNamer{used: make(map[string]bool)}
}

func (n *sheetNamer) name(desired string) string {
	s := SanitizeSheetName(desired)
	if !n.used[s] {
		n.used[s] = true
		return s
	}
	for i := 2; ; i++ {
		suffix := fmt.Sprintf("_%d", i)
		runes := []rune(s)
		if len(runes)+len(suffix) > maxSheetNameLen {
			runes = runes[:maxSheetNameLen-len(suffix)]
		}
		candidate := string(runes) + suffix
		if !n.used[candidate] {
			n.used[candidate] = true
			return candidate
		}
	}
}

// WriteWorkbook writes the consolidated tables to an xlsx workbook, one
// worksheet per table, with a header row of the item column followed by
// the ascending years. When yoys is non-empty a second worksheet per table
// carries the interleaved value/delta/percentage columns.
func WriteWorkbook(path string, tables []Table, yoys []YoYTable, cfg *Config) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	f := excelize.NewFile()
	defer f.Close()
	defaultSheet := f.GetSheetName(0)
	namer := newSheetNamer()

	for i, t := range tables {
		sheet := namer.name(t.Name)
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("creating sheet %q: %w", sheet, err)
		}
		if err := writeTableSheet(f, sheet, t, cfg); err != nil {
			return err
		}

		if i < len(yoys) {
			yoySheet := namer.name(t.Name + "_" + cfg.YoYSheetSuffix)
			if _, err := f.NewSheet(yoySheet); err != nil {
				return fmt.Errorf("creating sheet %q: %w", yoySheet, err)
			}
			if err := writeYoYSheet(f, yoySheet, yoys[i], cfg); err != nil {
				return err
			}
		}
	}

	if err := f.DeleteSheet(defaultSheet); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func writeTableSheet(f *excelize.File, sheet string, t Table, cfg *Config) error {
	header := make([]interface{}, 0, len(t.Years)+1)
	header = append(header, cfg.ItemHeader)
	for _, y := range t.Years {
		header = append(header, y)
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}

	for r, item := range t.Items {
		row := make([]interface{}, 0, len(t.Years)+1)
		row = append(row, item)
		for _, y := range t.Years {
			row = append(row, t.Value(item, y))
		}
		if err := setRow(f, sheet, r+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeYoYSheet(f *excelize.File, sheet string, yt YoYTable, cfg *Config) error {
	header := []interface{}{cfg.ItemHeader}
	for i, y := range yt.Years {
		header = append(header, y)
		if i > 0 {
			header = append(header, fmt.Sprintf("%d%s", y, cfg.DeltaSuffix))
			header = append(header, fmt.Sprintf("%d%s", y, cfg.PctSuffix))
		}
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}

	for r, item := range yt.Items {
		row := []interface{}{item}
		for i, y := range yt.Years {
			row = append(row, yt.Value[item][y])
			if i > 0 {
				row = append(row, yt.Delta[item][y])
				pct := yt.Pct[item][y]
				if math.IsNaN(pct) || math.IsInf(pct, 0) {
					row = append(row, "-")
				} else {
					row = append(row, pct)
				}
			}
		}
		if err := setRow(f, sheet, r+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("writing row %d of %q: %w", row, sheet, err)
	}
	return nil
}
