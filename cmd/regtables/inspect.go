package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"regtables/internal"
	"regtables/internal/catalog"
	"regtables/internal/pipeline"
)

func newInspectCmd(a *app) *cobra.Command {
	var pages string
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the tables found on each page and how every spec classifies them",
		Long: `inspect prints one line per detected table: its header as read from the
page, the canonical columns it maps to, and the verdict of every extraction
spec. Use it to check page ranges against a new edition of the document.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			input, err := pipeline.ResolveInput(a.cfg.InputPath, cwd)
			if err != nil {
				return err
			}

			src, err := pipeline.PDFOpener(a.pdfOptions())(input)
			if err != nil {
				return err
			}
			defer src.Close()

			r := specsRange(catalog.Specs, src.NumPage())
			if pages != "" {
				if r, err = internal.ParsePageRange(pages); err != nil {
					return err
				}
			}
			r.End = min(r.End, src.NumPage())

			header := []string{"page", "table", "rows", "header", "mapped"}
			for _, s := range catalog.Specs {
				header = append(header, s.Name)
			}
			tw := tablewriter.NewWriter(cmd.OutOrStdout())
			tw.SetHeader(header)
			tw.SetAutoWrapText(false)

			index := catalog.DefaultIndex()
			for page := r.Start; page <= r.End; page++ {
				raws, err := src.PageTables(page)
				if err != nil {
					return err
				}
				a.log.Debug("page inspected", "page", page, "tables", len(raws))
				for i, raw := range raws {
					tw.Append(inspectRow(page, i+1, raw, index))
				}
			}
			tw.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&pages, "pages", "", "page range such as 50-54 (default: the pages of all specs)")
	return cmd
}

func inspectRow(page, n int, raw internal.RawTable, index *catalog.Index) []string {
	row := []string{strconv.Itoa(page), strconv.Itoa(n)}
	t, ok := pipeline.BuildTable(raw)
	if !ok {
		row = append(row, "0", "(too few rows)", "")
		for range catalog.Specs {
			row = append(row, "-")
		}
		return row
	}

	mapped := pipeline.MapColumns(t, index)
	row = append(row, strconv.Itoa(len(t.Rows)), strings.Join(t.Columns, " | "), strings.Join(mapped.Columns, ", "))
	for _, s := range catalog.Specs {
		if mapped.Empty() {
			row = append(row, "unmapped")
			continue
		}
		row = append(row, pipeline.Classify(mapped.ColumnSet(), s).Reason)
	}
	return row
}

// specsRange spans every spec's pages, or the whole document when a spec
// has no range.
func specsRange(specs []internal.ExtractionSpec, numPage int) internal.PageRange {
	out := internal.PageRange{Start: numPage, End: 1}
	for _, s := range specs {
		if s.Pages == nil {
			return internal.PageRange{Start: 1, End: numPage}
		}
		out.Start = min(out.Start, s.Pages.Start)
		out.End = max(out.End, s.Pages.End)
	}
	return out
}
