package pipeline

import (
	"regtables/internal"
	"regtables/internal/util"
)

// BuildTable turns a detected region into a header plus data rows. Rows
// whose cells are all blank are dropped. It reports false when fewer than
// two rows survive, since a header alone is not a table.
func BuildTable(raw internal.RawTable) (internal.Table, bool) {
	rows := make([][]*string, 0, len(raw))
	for _, row := range raw {
		if !blankRow(row) {
			rows = append(rows, row)
		}
	}
	if len(rows) < 2 {
		return internal.Table{}, false
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	header := make([]string, width)
	for i, cell := range rows[0] {
		header[i] = util.NormalizeHeader(util.NormalizeCell(cell))
	}

	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		out := make([]string, width)
		for i, cell := range row {
			out[i] = util.NormalizeCell(cell)
		}
		data = append(data, out)
	}
	return internal.Table{Columns: header, Rows: data}, true
}

func blankRow(row []*string) bool {
	for _, cell := range row {
		if util.NormalizeCell(cell) != "" {
			return false
		}
	}
	return true
}
