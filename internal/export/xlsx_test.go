package export

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ironsheep/cgats-tools/internal/cgats"
)

const fixture = "CGATS.17\n" +
	"ORIGINATOR\texport test\n" +
	"BEGIN_DATA_FORMAT\n" +
	"SAMPLE_ID\tSAMPLE_NAME\tLAB_L\tLAB_A\tLAB_B\n" +
	"END_DATA_FORMAT\n" +
	"BEGIN_DATA\n" +
	"1\tPaper\t95.123456\t-0.5\t2.31\n" +
	"2\tCyan\t55.2\t-37.1\t-50.04\n" +
	"END_DATA\n"

func parse(t *testing.T) *cgats.Document {
	t.Helper()
	doc, err := cgats.Parse([]byte(fixture))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return doc
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	res, err := WriteFile(parse(t), path)
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if res.DataRows != 2 || res.Columns != 5 || res.MetadataRows != 2 || res.Path != path {
		t.Errorf("unexpected result: %+v", res)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != DataSheet || sheets[1] != MetadataSheet {
		t.Errorf("sheets: %v", sheets)
	}

	rows, err := f.GetRows(DataSheet)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	want := [][]string{
		{"SAMPLE_ID", "SAMPLE_NAME", "LAB_L", "LAB_A", "LAB_B"},
		{"1", "Paper", "95.1235", "-0.5", "2.31"},
		{"2", "Cyan", "55.2", "-37.1", "-50.04"},
	}
	for i, row := range want {
		for j, cell := range row {
			if rows[i][j] != cell {
				t.Errorf("row %d col %d: got %q, want %q", i, j, rows[i][j], cell)
			}
		}
	}

	meta, err := f.GetRows(MetadataSheet)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(meta) != 2 || meta[1][0] != "ORIGINATOR" || meta[1][1] != "export test" {
		t.Errorf("metadata rows: %v", meta)
	}

	// Numbers are stored as numbers, not text.
	typ, err := f.GetCellType(DataSheet, "C2")
	if err != nil {
		t.Fatalf("GetCellType failed: %v", err)
	}
	if typ == excelize.CellTypeSharedString || typ == excelize.CellTypeInlineString {
		t.Errorf("numeric cell stored as text (type %v)", typ)
	}
}

func TestWorkbook_TextFields(t *testing.T) {
	content := "CGATS.17\nBEGIN_DATA_FORMAT\nSAMPLE_ID\tSAMPLE_NAME\tLAB_L\nEND_DATA_FORMAT\n" +
		"BEGIN_DATA\n007\t0042\t50.5\nEND_DATA\n"
	doc, err := cgats.Parse([]byte(content))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	f, _, err := Workbook(doc)
	if err != nil {
		t.Fatalf("Workbook failed: %v", err)
	}
	defer f.Close()

	tests := []struct {
		cell   string
		want   string
		isText bool
	}{
		{"A2", "007", true},
		{"B2", "0042", true},
		{"C2", "50.5", false},
	}
	for _, tt := range tests {
		got, err := f.GetCellValue(DataSheet, tt.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) failed: %v", tt.cell, err)
		}
		if got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.cell, got, tt.want)
		}
		typ, err := f.GetCellType(DataSheet, tt.cell)
		if err != nil {
			t.Fatalf("GetCellType(%s) failed: %v", tt.cell, err)
		}
		text := typ == excelize.CellTypeSharedString || typ == excelize.CellTypeInlineString
		if text != tt.isText {
			t.Errorf("%s: stored as text = %v, want %v", tt.cell, text, tt.isText)
		}
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	res, err := Write(parse(t), &buf)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("no bytes written")
	}
	if res.Path != "" {
		t.Errorf("stream export should not set a path: %q", res.Path)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("output is not a workbook: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows(DataSheet)
	if err != nil || len(rows) != 3 {
		t.Errorf("got %d rows (%v), want 3", len(rows), err)
	}
}

func TestWriteFile_BadPath(t *testing.T) {
	_, err := WriteFile(parse(t), filepath.Join(t.TempDir(), "missing", "dir", "out.xlsx"))
	if !errors.Is(err, cgats.ErrWriteError) {
		t.Errorf("got %v, want ErrWriteError", err)
	}
}
