// Package pdftest writes small PDF files for tests: one Helvetica font,
// pages of hand-written content streams, and helpers that draw ruled grids.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Build returns a PDF with one page per content stream.
func Build(pages ...string) []byte {
	var buf bytes.Buffer
	var offsets []int
	obj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.4\n")

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}
	obj("<< /Type /Catalog /Pages 2 0 R >>")
	obj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))
	obj("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")
	for i, content := range pages {
		obj(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 5+2*i))
		obj(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(offsets)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)
	return buf.Bytes()
}

// Write stores Build(pages...) under a temp dir and returns the path.
func Write(t testing.TB, name string, pages ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, Build(pages...), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// Text shows s with its baseline starting at (x, y) in 10pt Helvetica.
func Text(x, y float64, s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return fmt.Sprintf("BT /F1 10 Tf 1 0 0 1 %.2f %.2f Tm (%s) Tj ET\n", x, y, r.Replace(s))
}

// Grid draws a ruled table whose top-left corner is (x, top). Every cell is
// a stroked rectangle with its text placed inside.
func Grid(x, top, colWidth, rowHeight float64, rows [][]string) string {
	var b strings.Builder
	for i, row := range rows {
		y := top - float64(i+1)*rowHeight
		for j, cell := range row {
			cx := x + float64(j)*colWidth
			fmt.Fprintf(&b, "%.2f %.2f %.2f %.2f re S\n", cx, y, colWidth, rowHeight)
			if cell != "" {
				b.WriteString(Text(cx+4, y+rowHeight/3, cell))
			}
		}
	}
	return b.String()
}

// Ruled draws the same table as Grid with one stroked m/l path per ruling
// instead of a rectangle per cell.
func Ruled(x, top, colWidth, rowHeight float64, rows [][]string) string {
	var b strings.Builder
	width := colWidth * float64(len(rows[0]))
	bottom := top - rowHeight*float64(len(rows))
	for i := 0; i <= len(rows); i++ {
		y := top - float64(i)*rowHeight
		b.WriteString(Line(x, y, x+width, y))
	}
	for j := 0; j <= len(rows[0]); j++ {
		cx := x + float64(j)*colWidth
		b.WriteString(Line(cx, top, cx, bottom))
	}
	for i, row := range rows {
		y := top - float64(i+1)*rowHeight
		for j, cell := range row {
			if cell != "" {
				b.WriteString(Text(x+float64(j)*colWidth+4, y+rowHeight/3, cell))
			}
		}
	}
	return b.String()
}

// Line strokes a single segment from (x0, y0) to (x1, y1).
func Line(x0, y0, x1, y1 float64) string {
	return fmt.Sprintf("%.2f %.2f m %.2f %.2f l S\n", x0, y0, x1, y1)
}

// Scaled wraps content in a saved graphics state under a cm scale, the way
// producers fit a drawing onto a smaller page.
func Scaled(sx, sy float64, content string) string {
	return fmt.Sprintf("q %g 0 0 %g 0 0 cm\n%sQ\n", sx, sy, content)
}

// Blank is a page without content.
const Blank = "q Q"
