package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"regtables/internal"
	"regtables/internal/catalog"
)

type Options struct {
	// InputPath is the resolved document, see ResolveInput.
	InputPath string
	OutputDir string
	// XLSXPath, when set, receives a workbook with one sheet per spec.
	XLSXPath string
}

// Runner extracts every spec in order and writes its CSV.
type Runner struct {
	Open  OpenFunc
	Index *catalog.Index
	Specs []internal.ExtractionSpec

	out io.Writer
	log *slog.Logger
}

func NewRunner(open OpenFunc, out io.Writer, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{
		Open:  open,
		Index: catalog.DefaultIndex(),
		Specs: catalog.Specs,
		out:   out,
		log:   log,
	}
}

// Run stops at the first failing spec. Files written for earlier specs stay.
func (r *Runner) Run(opts Options) (internal.Summary, error) {
	start := time.Now()
	log := r.log.With("run_id", uuid.NewString())
	extractor := NewExtractor(r.Open, r.Index, log)

	log.Info("run started", "input", opts.InputPath, "output_dir", opts.OutputDir, "specs", len(r.Specs))
	fmt.Fprintf(r.out, "extracting tables from %s\n", opts.InputPath)

	var summary internal.Summary
	var sheets []Sheet
	for _, spec := range r.Specs {
		t, err := extractor.Extract(opts.InputPath, spec)
		if err != nil {
			return summary, err
		}
		t = t.Reindex(spec.Outputs)

		path := filepath.Join(opts.OutputDir, spec.Path)
		if err := WriteCSV(t, path); err != nil {
			return summary, fmt.Errorf("write %s: %w", path, err)
		}
		summary.Add(spec.Name, len(t.Rows))
		sheets = append(sheets, Sheet{Name: spec.Name, Table: t})

		log.Info("spec exported", "spec", spec.Name, "rows", len(t.Rows), "path", path)
		fmt.Fprintf(r.out, "  - %s: %d rows saved (%s)\n", spec.Name, len(t.Rows), spec.Path)
	}

	if opts.XLSXPath != "" {
		if err := WriteXLSX(sheets, opts.XLSXPath); err != nil {
			return summary, fmt.Errorf("write %s: %w", opts.XLSXPath, err)
		}
		log.Info("workbook exported", "path", opts.XLSXPath)
	}

	blob, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return summary, err
	}
	fmt.Fprintf(r.out, "csv export complete: %s\n", blob)
	log.Info("run finished", "took_ms", time.Since(start).Milliseconds())
	return summary, nil
}
