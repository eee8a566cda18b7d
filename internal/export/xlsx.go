package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/ironsheep/cgats-tools/internal/cgats"
	"github.com/ironsheep/cgats-tools/internal/deltae"
)

// Sheet names used in exported workbooks.
const (
	DataSheet     = "Data"
	MetadataSheet = "Metadata"
)

// Result describes an exported workbook.
type Result struct {
	Path         string   `json:"path,omitempty"`
	DataRows     int      `json:"data_rows"`
	Columns      int      `json:"columns"`
	MetadataRows int      `json:"metadata_rows"`
	Sheets       []string `json:"sheets"`
}

// Workbook builds an XLSX workbook for doc.
//
// The Data sheet has the canonical field names as a frozen header row and
// one row per sample in table order. Cells of numeric fields are written as
// numbers rounded to cgats.OutputPlaces. SAMPLE_ID, SAMPLE_NAME, BLANK, and
// unparseable cells are written as text. The Metadata sheet
// holds one row per metadata line.
//
// The caller must Close the returned file.
func Workbook(doc *cgats.Document) (*excelize.File, *Result, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), DataSheet); err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("failed to name data sheet: %w", err)
	}
	if _, err := f.NewSheet(MetadataSheet); err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("failed to create metadata sheet: %w", err)
	}

	res := &Result{
		Columns: len(doc.Layout),
		Sheets:  []string{DataSheet, MetadataSheet},
	}

	header := make([]interface{}, len(doc.Layout))
	for i, name := range doc.Layout.Names() {
		header[i] = name
	}
	if err := setRow(f, DataSheet, 1, header); err != nil {
		f.Close()
		return nil, nil, err
	}

	row := 2
	err := doc.Samples.Each(func(index int, s cgats.Sample) error {
		cells := make([]interface{}, len(s.Values))
		for i, v := range s.Values {
			if n, ok := v.Number(); ok && i < len(doc.Layout) && doc.Layout[i].IsNumeric() {
				cells[i] = deltae.Round(n, cgats.OutputPlaces)
			} else {
				cells[i] = v.Text
			}
		}
		if err := setRow(f, DataSheet, row, cells); err != nil {
			return fmt.Errorf("sample %d: %w", index, err)
		}
		row++
		res.DataRows++
		return nil
	})
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	for i, rec := range doc.Metadata {
		cells := make([]interface{}, len(rec))
		for j, c := range rec {
			cells[j] = c
		}
		if err := setRow(f, MetadataSheet, i+1, cells); err != nil {
			f.Close()
			return nil, nil, err
		}
		res.MetadataRows++
	}

	if err := styleHeader(f, len(doc.Layout)); err != nil {
		f.Close()
		return nil, nil, err
	}

	return f, res, nil
}

// WriteFile exports doc to an .xlsx file at path.
func WriteFile(doc *cgats.Document, path string) (*Result, error) {
	f, res, err := Workbook(doc)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return nil, &cgats.Error{Kind: cgats.KindWriteError, Op: "export xlsx", Path: path, Err: err}
	}
	res.Path = path
	return res, nil
}

// Write exports doc as an XLSX stream to w.
func Write(doc *cgats.Document, w io.Writer) (*Result, error) {
	f, res, err := Workbook(doc)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return nil, &cgats.Error{Kind: cgats.KindWriteError, Op: "export xlsx", Err: err}
	}
	return res, nil
}

func setRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	if len(cells) == 0 {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to address row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func styleHeader(f *excelize.File, cols int) error {
	if cols == 0 {
		return nil
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(cols, 1)
	if err != nil {
		return fmt.Errorf("failed to address header: %w", err)
	}
	if err := f.SetCellStyle(DataSheet, "A1", last, style); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	return f.SetPanes(DataSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
