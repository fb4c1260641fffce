package internal

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// Source reads a spreadsheet export into a raw cell grid. sheet is the
// preferred worksheet name; formats without worksheets ignore it.
type Source interface {
	Read(path, sheet string) (Grid, error)
}

// SourceFunc is a function that implements Source
type SourceFunc func(path, sheet string) (Grid, error)

func (f SourceFunc) Read(path, sheet string) (Grid, error) {
	return f(path, sheet)
}

// sources is the registry of available input formats
var sources = map[string]Source{}

// RegisterSource registers an input format with the given name
func RegisterSource(name string, s Source) {
	sources[name] = s
}

// GetSource returns the source for the given format name
func GetSource(name string) (Source, error) {
	s, ok := sources[name]
	if !ok {
		return nil, fmt.Errorf("unknown source type: %s (available: %v)", name, AvailableSources())
	}
	return s, nil
}

// AvailableSources returns a list of registered format names
func AvailableSources() []string {
	var names []string
	for name := range sources {
		names = append(names, name)
	}
	return names
}

// ReadGridXLSX reads a workbook into a headerless grid. The preferred
// sheet is used when present, otherwise the first sheet.
func ReadGridXLSX(path, sheet string) (Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in file")
	}

	chosen := sheets[0]
	for _, name := range sheets {
		if name == sheet {
			chosen = name
			break
		}
	}

	rows, err := f.GetRows(chosen)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", chosen, err)
	}
	return Grid(rows), nil
}

// ReadGridCSV reads a plain-text export into the same headerless grid
// shape. Rows may have varying cell counts.
func ReadGridCSV(path, _ string) (Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}
	return Grid(rows), nil
}

func init() {
	// Register built-in input formats
	RegisterSource("xlsx", SourceFunc(ReadGridXLSX))
	RegisterSource("csv", SourceFunc(ReadGridCSV))
}
