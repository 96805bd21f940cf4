package pdftable

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regtables/internal"
	"regtables/internal/pdftable/pdftest"
)

func cells(t internal.RawTable) [][]string {
	out := make([][]string, len(t))
	for i, row := range t {
		out[i] = make([]string, len(row))
		for j, c := range row {
			if c != nil {
				out[i][j] = *c
			}
		}
	}
	return out
}

func TestPageTablesLattice(t *testing.T) {
	grid := pdftest.Grid(50, 700, 120, 20, [][]string{
		{"College", "Department", "Degree"},
		{"Science", "Physics", "Master"},
		{"Arts", "Music", "Doctor"},
	})
	path := pdftest.Write(t, "grid.pdf", pdftest.Blank, grid)

	doc, err := Open(path, DefaultOptions())
	require.NoError(t, err)
	defer doc.Close()

	assert.Equal(t, 2, doc.NumPage())

	tables, err := doc.PageTables(1)
	require.NoError(t, err)
	assert.Empty(t, tables)

	tables, err = doc.PageTables(2)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, [][]string{
		{"College", "Department", "Degree"},
		{"Science", "Physics", "Master"},
		{"Arts", "Music", "Doctor"},
	}, cells(tables[0]))
}

func TestPageTablesTwoGridsTopFirst(t *testing.T) {
	lower := pdftest.Grid(50, 400, 100, 20, [][]string{{"b1", "b2"}, {"b3", "b4"}})
	upper := pdftest.Grid(50, 700, 100, 20, [][]string{{"a1", "a2"}, {"a3", "a4"}})
	path := pdftest.Write(t, "two.pdf", lower+upper)

	doc, err := Open(path, DefaultOptions())
	require.NoError(t, err)
	defer doc.Close()

	tables, err := doc.PageTables(1)
	require.NoError(t, err)
	require.Len(t, tables, 2)
	assert.Equal(t, [][]string{{"a1", "a2"}, {"a3", "a4"}}, cells(tables[0]))
	assert.Equal(t, [][]string{{"b1", "b2"}, {"b3", "b4"}}, cells(tables[1]))
}

func TestPageTablesLineStrokes(t *testing.T) {
	rows := [][]string{
		{"College", "Department", "Degree"},
		{"Science", "Physics", "Master"},
	}
	path := pdftest.Write(t, "strokes.pdf", pdftest.Ruled(50, 700, 120, 20, rows))

	doc, err := Open(path, DefaultOptions())
	require.NoError(t, err)
	defer doc.Close()

	tables, err := doc.PageTables(1)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, rows, cells(tables[0]))
}

func TestPageTablesScaledGrid(t *testing.T) {
	rows := [][]string{
		{"College", "Department", "Degree"},
		{"Science", "Physics", "Master"},
	}
	for name, page := range map[string]string{
		"rectangles": pdftest.Scaled(0.75, 0.75, pdftest.Grid(50, 700, 120, 20, rows)),
		"strokes":    pdftest.Scaled(0.75, 0.75, pdftest.Ruled(50, 700, 120, 20, rows)),
	} {
		t.Run(name, func(t *testing.T) {
			doc, err := Open(pdftest.Write(t, "scaled.pdf", page), DefaultOptions())
			require.NoError(t, err)
			defer doc.Close()

			tables, err := doc.PageTables(1)
			require.NoError(t, err)
			require.Len(t, tables, 1)
			assert.Equal(t, rows, cells(tables[0]))
		})
	}
}

func TestPageTablesMergedCell(t *testing.T) {
	// "Alpha" spans the last two rows: the ruling under it stops at x=110.
	page := pdftest.Line(50, 700, 250, 700) +
		pdftest.Line(50, 680, 250, 680) +
		pdftest.Line(110, 660, 250, 660) +
		pdftest.Line(50, 640, 250, 640) +
		pdftest.Line(50, 700, 50, 640) +
		pdftest.Line(110, 700, 110, 640) +
		pdftest.Line(250, 700, 250, 640) +
		pdftest.Text(54, 686, "Group") + pdftest.Text(114, 686, "Item") +
		pdftest.Text(54, 666, "Alpha") + pdftest.Text(114, 666, "one") +
		pdftest.Text(114, 646, "two")
	path := pdftest.Write(t, "merged.pdf", page)

	doc, err := Open(path, DefaultOptions())
	require.NoError(t, err)
	defer doc.Close()

	tables, err := doc.PageTables(1)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	raw := tables[0]
	require.Len(t, raw, 3)
	assert.Nil(t, raw[2][0])
	assert.Equal(t, [][]string{{"Group", "Item"}, {"Alpha", "one"}, {"", "two"}}, cells(raw))
}

func TestPageTablesTextStrategy(t *testing.T) {
	var page string
	for i, row := range [][]string{{"Name", "Kind"}, {"alpha", "one"}, {"beta", "two"}} {
		y := 700 - float64(i)*14
		page += pdftest.Text(60, y, row[0]) + pdftest.Text(200, y, row[1])
	}
	path := pdftest.Write(t, "plain.pdf", page)

	doc, err := Open(path, Options{Strategy: StrategyText, SnapTolerance: 3})
	require.NoError(t, err)
	defer doc.Close()

	tables, err := doc.PageTables(1)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, [][]string{{"Name", "Kind"}, {"alpha", "one"}, {"beta", "two"}}, cells(tables[0]))
}

func TestPageTablesOutOfRange(t *testing.T) {
	path := pdftest.Write(t, "one.pdf", pdftest.Blank)
	doc, err := Open(path, DefaultOptions())
	require.NoError(t, err)
	defer doc.Close()

	_, err = doc.PageTables(0)
	assert.Error(t, err)
	_, err = doc.PageTables(2)
	assert.ErrorContains(t, err, "out of range")
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Open(filepath.Join(dir, "missing.pdf"), DefaultOptions())
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.pdf")
	require.NoError(t, os.WriteFile(bad, []byte("this is not a pdf file"), 0o644))
	_, err = Open(bad, DefaultOptions())
	assert.ErrorContains(t, err, "open pdf")

	truncated := filepath.Join(dir, "truncated.pdf")
	full := pdftest.Build(pdftest.Blank)
	require.NoError(t, os.WriteFile(truncated, full[:len(full)/2], 0o644))
	_, err = Open(truncated, DefaultOptions())
	assert.ErrorContains(t, err, "open pdf")

	path := pdftest.Write(t, "ok.pdf", pdftest.Blank)
	_, err = Open(path, Options{Strategy: "stream"})
	assert.ErrorContains(t, err, "unsupported table strategy")
}
