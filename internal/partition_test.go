package internal

import "testing"

func TestSplitOnMarkerNoDelimiters(t *testing.T) {
	g := Grid{{"売上高", "100"}, {"原価", "60"}}

	blocks := SplitOnMarker(g, "ファイル名:", false)
	if len(blocks) != 1 || blocks[0].NumRows() != 2 {
		t.Fatalf("expected whole grid as one block, got %v", blocks)
	}
}

func TestSplitOnMarker(t *testing.T) {
	g := Grid{
		{"prelude"},
		{"ファイル名: a.xlsx"},
		{"売上高", "100"},
		{"ファイル名: b.xlsx"},
		{"売上高", "200"},
		{"原価", "120"},
	}

	t.Run("leading rows dropped", func(t *testing.T) {
		blocks := SplitOnMarker(g, "ファイル名:", false)
		if len(blocks) != 2 {
			t.Fatalf("expected 2 blocks, got %d", len(blocks))
		}
		if blocks[0].NumRows() != 2 || blocks[0].Cell(0, 0) != "ファイル名: a.xlsx" {
			t.Errorf("block 0 = %v", blocks[0])
		}
		if blocks[1].NumRows() != 3 || blocks[1].Cell(2, 0) != "原価" {
			t.Errorf("block 1 = %v", blocks[1])
		}
	})

	t.Run("leading rows kept", func(t *testing.T) {
		blocks := SplitOnMarker(g, "ファイル名:", true)
		if len(blocks) != 3 {
			t.Fatalf("expected 3 blocks, got %d", len(blocks))
		}
		if blocks[0].NumRows() != 1 || blocks[0].Cell(0, 0) != "prelude" {
			t.Errorf("leading block = %v", blocks[0])
		}
	})
}

func TestSplitOnMarkerEmptyGrid(t *testing.T) {
	if blocks := SplitOnMarker(nil, "x", true); blocks != nil {
		t.Errorf("expected nil for empty grid, got %v", blocks)
	}
}

func TestSplitOnBlankRows(t *testing.T) {
	g := Grid{
		{""},
		{"売上高", "100"},
		{"原価", "60"},
		{"", "  "},
		{""},
		{"販管費", "20"},
		{""},
	}

	blocks := SplitOnBlankRows(g)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].NumRows() != 2 || blocks[0].Cell(0, 0) != "売上高" {
		t.Errorf("block 0 = %v", blocks[0])
	}
	if blocks[1].NumRows() != 1 || blocks[1].Cell(0, 0) != "販管費" {
		t.Errorf("block 1 = %v", blocks[1])
	}
}

func TestSplitOnBlankRowsAllBlank(t *testing.T) {
	g := Grid{{""}, {"", ""}}
	if blocks := SplitOnBlankRows(g); blocks != nil {
		t.Errorf("expected no blocks, got %v", blocks)
	}
}

func TestSplitFilesAndPages(t *testing.T) {
	g := Grid{
		{"ファイル名: a.xlsx"},
		{"2022", "x"},
		{"--- ページ 2 ---"},
		{"2023", "y"},
		{"ファイル名: b.xlsx"},
		{"2022", "z"},
	}

	files := SplitFilesAndPages(g, "ファイル名:", "--- ページ")
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}
	if len(files[0]) != 2 {
		t.Fatalf("file 0: expected 2 pages, got %d", len(files[0]))
	}
	if len(files[1]) != 1 {
		t.Fatalf("file 1: expected 1 page, got %d", len(files[1]))
	}
	// First page keeps the file marker row as its head
	if files[0][0].Cell(0, 0) != "ファイル名: a.xlsx" {
		t.Errorf("file 0 page 0 head = %q", files[0][0].Cell(0, 0))
	}
	if files[0][1].Cell(0, 0) != "--- ページ 2 ---" {
		t.Errorf("file 0 page 1 head = %q", files[0][1].Cell(0, 0))
	}
}
