package internal

import (
	"errors"
	"fmt"
)

// SplitMode selects how the input grid is partitioned into blocks.
type SplitMode string

const (
	// SplitFilePage splits on the file marker, then on the page marker
	// within each file. The i-th page of every file feeds table i.
	SplitFilePage SplitMode = "file-page"
	// SplitPage splits on the page marker only; each page feeds its own
	// table.
	SplitPage SplitMode = "page"
	// SplitBlank splits on blank rows; all blocks feed one table.
	SplitBlank SplitMode = "blank"
	// SplitNone treats the whole grid as one block feeding one table.
	SplitNone SplitMode = "none"
)

// Stats counts recoverable conditions encountered during one run. They
// never affect control flow; the CLI surfaces them for diagnostics.
type Stats struct {
	Files              int
	Blocks             int
	BlocksWithoutYears int
	NonNumericAmounts  int
	EmptyNamesDropped  int
}

// Result is the artifact of one pipeline run.
type Result struct {
	Tables []Table
	Stats  Stats
}

// Pipeline runs the full normalization flow for a single request. Each run
// operates on its own input grid and holds no state between invocations;
// concurrent callers each construct their own Pipeline.
type Pipeline struct {
	cfg *Config
}

// NewPipeline returns a pipeline bound to the given conventions.
func NewPipeline(cfg *Config) *Pipeline {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Pipeline{cfg: cfg}
}

// Run locates year headers, partitions the grid, extracts item/value pairs
// and consolidates them into one or more tables. Blocks without year
// headers contribute nothing; if no block in the entire input yields a
// year header, the run fails and no tables are produced.
func (p *Pipeline) Run(g Grid) (*Result, error) {
	if g.NumRows() == 0 {
		return nil, errors.New("input grid is empty")
	}

	res := &Result{}
	groups := p.groupBlocks(g, &res.Stats)

	opts := ExtractOptions{
		OtherLabel:      p.cfg.OtherLabel,
		ItemCol:         0,
		YearPolicy:      p.cfg.YearPolicy,
		BoundAtNextMark: true,
	}
	match := p.cfg.Matcher()

	for _, blocks := range groups {
		var contribs []BlockTable
		for _, block := range blocks {
			res.Stats.Blocks++
			marks := LocateYears(block, match)
			if len(marks) == 0 {
				res.Stats.BlocksWithoutYears++
				continue
			}
			contribs = append(contribs, ExtractBlock(block, marks, opts, &res.Stats)...)
		}
		if len(contribs) == 0 {
			continue
		}
		t := Consolidate(contribs, p.cfg.Merge)
		t.Name = fmt.Sprintf("%s_%d", p.cfg.OutputSheetBase, len(res.Tables)+1)
		res.Tables = append(res.Tables, t)
	}

	if len(res.Tables) == 0 {
		return nil, errors.New("no year headers found in input")
	}
	return res, nil
}

// groupBlocks partitions the grid per the configured strategy and groups
// blocks destined for the same output table.
func (p *Pipeline) groupBlocks(g Grid, stats *Stats) [][]Grid {
	switch p.cfg.Split {
	case SplitFilePage:
		files := SplitFilesAndPages(g, p.cfg.FileMarker, p.cfg.PageMarker)
		stats.Files = len(files)
		var groups [][]Grid
		for _, pages := range files {
			for i, page := range pages {
				for len(groups) <= i {
					groups = append(groups, nil)
				}
				groups[i] = append(groups[i], page)
			}
		}
		return groups
	case SplitPage:
		pages := SplitOnMarker(g, p.cfg.PageMarker, true)
		groups := make([][]Grid, 0, len(pages))
		for _, page := range pages {
			groups = append(groups, []Grid{page})
		}
		return groups
	case SplitBlank:
		return [][]Grid{SplitOnBlankRows(g)}
	default: // SplitNone
		return [][]Grid{{g}}
	}
}
