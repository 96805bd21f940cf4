package pdftable

import (
	"fmt"
	"strings"

	"github.com/tsawler/tabula/contentstream"
	"github.com/tsawler/tabula/core"
	"github.com/tsawler/tabula/graphicsstate"
	"github.com/tsawler/tabula/model"
	"github.com/tsawler/tabula/text"
)

// pageContent is one page as the detectors see it: positioned text in
// page.RawText and the paths the graphics extractor collected.
type pageContent struct {
	page     *model.Page
	graphics *graphicsstate.GraphicsExtractor
}

// pageContent decodes page n and runs its operations through tabula's
// graphics and text extractors. A page without content streams yields nil.
func (d *Document) pageContent(n int) (c *pageContent, err error) {
	defer func() {
		if p := recover(); p != nil {
			c, err = nil, fmt.Errorf("read page content: %v", p)
		}
	}()

	p, err := d.r.GetPage(n - 1)
	if err != nil {
		return nil, err
	}
	streams, err := p.Contents()
	if err != nil {
		return nil, err
	}
	var data []byte
	for _, obj := range streams {
		s, ok := obj.(*core.Stream)
		if !ok {
			continue
		}
		b, err := s.Decode()
		if err != nil {
			return nil, fmt.Errorf("decode content stream: %w", err)
		}
		data = append(data, b...)
		data = append(data, '\n')
	}
	if len(data) == 0 {
		return nil, nil
	}

	ops, err := contentstream.NewParser(data).Parse()
	if err != nil {
		return nil, fmt.Errorf("parse content stream: %w", err)
	}

	ge := graphicsstate.NewGraphicsExtractor()
	if err := ge.Extract(ops); err != nil {
		return nil, fmt.Errorf("extract graphics: %w", err)
	}

	te := text.NewExtractor()
	// Pages whose fonts cannot be registered still yield text, decoded from
	// the raw string bytes.
	_ = te.RegisterFontsFromPage(p, d.r.ResolveReference)
	frags, err := te.Extract(ops)
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}

	page := model.NewPage(0, 0)
	page.Number = n
	if w, err := p.Width(); err == nil {
		page.Width = w
	}
	if h, err := p.Height(); err == nil {
		page.Height = h
	}
	page.RawText = toFragments(frags)
	page.RawLines = ge.ToModelLines()
	return &pageContent{page: page, graphics: ge}, nil
}

func toFragments(frags []text.TextFragment) []model.TextFragment {
	out := make([]model.TextFragment, 0, len(frags))
	for _, f := range frags {
		if strings.TrimSpace(f.Text) == "" {
			continue
		}
		out = append(out, model.TextFragment{
			Text:     f.Text,
			BBox:     model.BBox{X: f.X, Y: f.Y, Width: f.Width, Height: f.Height},
			FontSize: f.FontSize,
			FontName: f.FontName,
		})
	}
	return out
}
