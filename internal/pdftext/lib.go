// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"context"
	"fmt"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/pdiddy/persona-digest/pkg/types"
)

// LibExtractor reads PDFs with the pure-Go ledongthuc/pdf reader.
type LibExtractor struct{}

// Extract implements Extractor. Only the requested pages are decoded.
func (LibExtractor) Extract(ctx context.Context, path string, limit int) (pages []types.PageText, err error) {
	// The reader panics on some malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			pages, err = nil, fmt.Errorf("reading %s: %v", path, r)
		}
	}()

	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	n := reader.NumPage()
	if limit > 0 && limit < n {
		n = limit
	}

	pages = make([]types.PageText, 0, n)
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pt := types.PageText{Page: i}
		page := reader.Page(i)
		if !page.V.IsNull() {
			text, err := page.GetPlainText(nil)
			if err != nil {
				return nil, fmt.Errorf("reading page %d of %s: %w", i, path, err)
			}
			pt.Text = text
		}
		pages = append(pages, pt)
	}
	return pages, nil
}
