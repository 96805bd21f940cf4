// Package pdftable finds tables on PDF pages with github.com/tsawler/tabula.
//
// Pages are read with tabula's reader. Their content streams go through
// tabula's graphics extractor, which applies the current transformation
// matrix to every path, and through its text extractor for positioned text.
//
// Two strategies are available. "lines" builds cell grids from ruled
// paths with tabula's grid detector, the way most regulation documents draw
// their tables. "text" runs tabula's geometric detector over text alone for
// tables printed without rulings.
package pdftable

import (
	"fmt"
	"os"

	"github.com/tsawler/tabula/reader"

	"regtables/internal"
)

const (
	StrategyLines = "lines"
	StrategyText  = "text"
)

type Options struct {
	Strategy string
	// SnapTolerance is the distance in points under which rulings and
	// positions count as aligned.
	SnapTolerance float64
}

func DefaultOptions() Options {
	return Options{Strategy: StrategyLines, SnapTolerance: 3}
}

// Document is an open PDF. Close it when done.
type Document struct {
	r       *reader.Reader
	numPage int
	opts    Options
}

func Open(path string, opts Options) (*Document, error) {
	if opts.SnapTolerance <= 0 {
		opts.SnapTolerance = DefaultOptions().SnapTolerance
	}
	switch opts.Strategy {
	case "":
		opts.Strategy = StrategyLines
	case StrategyLines, StrategyText:
	default:
		return nil, fmt.Errorf("unsupported table strategy: %s", opts.Strategy)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	r, n, err := openReader(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	return &Document{r: r, numPage: n, opts: opts}, nil
}

// openReader parses the xref and page tree of f. The parser can panic on
// damaged files; that is reported as an error and f stays open for the
// caller to close.
func openReader(f *os.File) (r *reader.Reader, n int, err error) {
	defer func() {
		if p := recover(); p != nil {
			r, n, err = nil, 0, fmt.Errorf("malformed pdf: %v", p)
		}
	}()
	if r, err = reader.NewReader(f); err != nil {
		return nil, 0, err
	}
	if n, err = r.PageCount(); err != nil {
		return nil, 0, fmt.Errorf("read page tree: %w", err)
	}
	return r, n, nil
}

func (d *Document) NumPage() int {
	return d.numPage
}

func (d *Document) Close() error {
	return d.r.Close()
}

// PageTables returns every table detected on page n (1-indexed), top to
// bottom. A page without tables yields an empty slice.
func (d *Document) PageTables(n int) ([]internal.RawTable, error) {
	if n < 1 || n > d.numPage {
		return nil, fmt.Errorf("page %d out of range 1-%d", n, d.numPage)
	}
	c, err := d.pageContent(n)
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", n, err)
	}
	if c == nil {
		return nil, nil
	}

	if d.opts.Strategy == StrategyText {
		return textTables(c, d.opts.SnapTolerance)
	}
	return ruledTables(c, d.opts.SnapTolerance), nil
}
