package pdftable

import (
	"fmt"

	"github.com/tsawler/tabula/model"
	"github.com/tsawler/tabula/tables"

	"regtables/internal"
)

// textMinConfidence admits unruled tables. The geometric score gives a
// fifth of its weight to drawn lines, which these tables never have.
const textMinConfidence = 0.3

// textTables detects unruled tables with tabula's geometric detector. Its
// grid takes boundaries from both edges of every text run, so the gutters
// between rows and columns come back as empty rows and columns and are
// dropped here.
func textTables(c *pageContent, tol float64) ([]internal.RawTable, error) {
	det := tables.NewGeometricDetector()
	if err := det.Configure(tables.Config{
		MinRows:            2,
		MinCols:            2,
		MinConfidence:      textMinConfidence,
		UseWhitespace:      true,
		AlignmentTolerance: tol,
	}); err != nil {
		return nil, err
	}
	found, err := det.Detect(c.page)
	if err != nil {
		return nil, fmt.Errorf("detect tables: %w", err)
	}
	for _, t := range found {
		for i, row := range t.Rows {
			for j := range row {
				t.Rows[i][j].Text = normalizeText(row[j].Text)
			}
		}
		dropEmpty(t)
	}
	return toRawTables(found), nil
}

// dropEmpty removes the rows and columns of t that hold no text at all.
func dropEmpty(t *model.Table) {
	keepCol := make([]bool, t.ColCount())
	var rows [][]model.Cell
	for _, row := range t.Rows {
		empty := true
		for j, c := range row {
			if c.Text != "" {
				empty = false
				keepCol[j] = true
			}
		}
		if !empty {
			rows = append(rows, row)
		}
	}
	for i, row := range rows {
		kept := make([]model.Cell, 0, len(row))
		for j, c := range row {
			if keepCol[j] {
				kept = append(kept, c)
			}
		}
		rows[i] = kept
	}
	t.Rows = rows
}
