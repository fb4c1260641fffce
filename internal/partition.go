package internal

// SplitOnMarker splits the grid into blocks along rows whose first-column
// text contains marker. Each block starts at a delimiter row (inclusive)
// and runs until the next delimiter or the end of the grid. When the grid
// contains no delimiter rows, the whole grid is one block.
//
// keepLeading controls what happens to rows before the first delimiter:
// the page-level split keeps them as their own block, the file-level split
// discards them.
func SplitOnMarker(g Grid, marker string, keepLeading bool) []Grid {
	if g.NumRows() == 0 {
		return nil
	}
	markers := g.FirstColContains(marker)
	if len(markers) == 0 {
		return []Grid{g}
	}

	var blocks []Grid
	if keepLeading && markers[0] > 0 {
		blocks = append(blocks, g.Slice(0, markers[0]))
	}
	for i, start := range markers {
		end := g.NumRows()
		if i+1 < len(markers) {
			end = markers[i+1]
		}
		if block := g.Slice(start, end); block.NumRows() > 0 {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// SplitOnBlankRows splits the grid into maximal runs of non-blank rows.
// Blank delimiter rows are dropped; consecutive and leading/trailing blank
// rows are absorbed.
func SplitOnBlankRows(g Grid) []Grid {
	var blocks []Grid
	start := -1
	for r := 0; r < g.NumRows(); r++ {
		if g.IsBlankRow(r) {
			if start >= 0 {
				blocks = append(blocks, g.Slice(start, r))
				start = -1
			}
			continue
		}
		if start < 0 {
			start = r
		}
	}
	if start >= 0 {
		blocks = append(blocks, g.Slice(start, g.NumRows()))
	}
	return blocks
}

// SplitFilesAndPages applies the nested partition used by multi-file
// exports: the grid is first split on the file marker, then each file block
// is split on the page marker. The result is indexed [file][page], with
// rows before a file's first page marker forming that file's first page.
func SplitFilesAndPages(g Grid, fileMarker, pageMarker string) [][]Grid {
	files := SplitOnMarker(g, fileMarker, false)
	pages := make([][]Grid, 0, len(files))
	for _, file := range files {
		pages = append(pages, SplitOnMarker(file, pageMarker, true))
	}
	return pages
}
