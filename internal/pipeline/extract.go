package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"regtables/internal"
	"regtables/internal/catalog"
	"regtables/internal/pdftable"
)

var ErrNoMatchingTable = errors.New("no table with the required columns")

// TableSource is an opened document that can list the tables on each page.
type TableSource interface {
	NumPage() int
	PageTables(page int) ([]internal.RawTable, error)
	Close() error
}

type OpenFunc func(path string) (TableSource, error)

// PDFOpener opens documents with pdftable using opts.
func PDFOpener(opts pdftable.Options) OpenFunc {
	return func(path string) (TableSource, error) {
		doc, err := pdftable.Open(path, opts)
		if err != nil {
			return nil, err
		}
		return doc, nil
	}
}

type Extractor struct {
	open  OpenFunc
	index *catalog.Index
	log   *slog.Logger
}

func NewExtractor(open OpenFunc, index *catalog.Index, log *slog.Logger) *Extractor {
	if log == nil {
		log = slog.Default()
	}
	return &Extractor{open: open, index: index, log: log}
}

// Extract scans the pages of spec's range and returns every accepted table
// projected to the target columns and concatenated in page order.
func (e *Extractor) Extract(path string, spec internal.ExtractionSpec) (internal.Table, error) {
	src, err := e.open(path)
	if err != nil {
		return internal.Table{}, err
	}
	defer src.Close()

	first, last := 1, src.NumPage()
	if spec.Pages != nil {
		first = max(first, spec.Pages.Start)
		last = min(last, spec.Pages.End)
	}

	var frames []internal.Table
	for page := first; page <= last; page++ {
		raws, err := src.PageTables(page)
		if err != nil {
			return internal.Table{}, fmt.Errorf("extract %s: %w", spec.Name, err)
		}
		e.log.Debug("page scanned", "spec", spec.Name, "page", page, "tables", len(raws))

		for i, raw := range raws {
			t, ok := BuildTable(raw)
			if !ok {
				continue
			}
			mapped := MapColumns(t, e.index)
			if mapped.Empty() {
				continue
			}
			verdict := Classify(mapped.ColumnSet(), spec)
			e.log.Debug("table classified", "spec", spec.Name, "page", page, "table", i,
				"columns", mapped.Columns, "reason", verdict.Reason)
			if !verdict.Accept {
				continue
			}
			frames = append(frames, projectTargets(mapped, spec.Targets))
		}
	}

	if len(frames) == 0 {
		return internal.Table{}, fmt.Errorf("%w: targets %s (pages %s, exclude %s, require %s)",
			ErrNoMatchingTable, setString(spec.Targets), rangeString(spec.Pages),
			setString(spec.Exclude), setString(spec.Require))
	}
	return concatTables(frames), nil
}

func projectTargets(t internal.Table, targets internal.ColumnSet) internal.Table {
	var idx []int
	for i, c := range t.Columns {
		if targets.Has(c) {
			idx = append(idx, i)
		}
	}
	return t.Select(idx)
}

// concatTables stacks tables, aligning columns by name in order of first
// appearance. A repeated column name keeps only its first occurrence.
func concatTables(frames []internal.Table) internal.Table {
	var columns []string
	seen := internal.ColumnSet{}
	for _, f := range frames {
		for _, c := range f.Columns {
			if !seen.Has(c) {
				seen[c] = struct{}{}
				columns = append(columns, c)
			}
		}
	}

	out := internal.Table{Columns: columns}
	for _, f := range frames {
		out.Rows = append(out.Rows, f.Reindex(columns).Rows...)
	}
	return out
}

func setString(s internal.ColumnSet) string {
	if len(s) == 0 {
		return "none"
	}
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return "{" + strings.Join(names, ", ") + "}"
}

func rangeString(r *internal.PageRange) string {
	if r == nil {
		return "all"
	}
	return r.String()
}
