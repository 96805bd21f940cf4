package pipeline

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"regtables/internal"
)

// WriteCSV writes t with a header row as UTF-8 with a byte order mark, so
// spreadsheet programs pick the right encoding for Hangul text.
func WriteCSV(t internal.Table, outputPath string) (err error) {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	bw := transform.NewWriter(f, unicode.UTF8BOM.NewEncoder())
	w := csv.NewWriter(bw)
	if err := w.Write(t.Columns); err != nil {
		return err
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return err
	}
	return bw.Close()
}

// Sheet is one result table stored in a workbook.
type Sheet struct {
	Name  string
	Table internal.Table
}

// WriteXLSX stores every sheet in one workbook, in order, header row first.
func WriteXLSX(sheets []Sheet, outputPath string) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), s.Name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(s.Name); err != nil {
			return err
		}
		if err := writeSheet(f, s); err != nil {
			return fmt.Errorf("sheet %s: %w", s.Name, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

func writeSheet(f *excelize.File, s Sheet) error {
	set := func(col, row int, value string) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellStr(s.Name, cell, value)
	}

	for i, h := range s.Table.Columns {
		if err := set(i+1, 1, h); err != nil {
			return err
		}
	}
	for r, row := range s.Table.Rows {
		for c, v := range row {
			if err := set(c+1, r+2, v); err != nil {
				return err
			}
		}
	}
	return nil
}
