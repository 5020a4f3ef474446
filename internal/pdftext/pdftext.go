// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext extracts per-page plain text from PDF files and resolves
// collection document names to files on disk.
package pdftext

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/pdiddy/persona-digest/pkg/types"
)

// ErrMissingDocument is returned when a referenced document file does not exist.
var ErrMissingDocument = errors.New("document not found")

// Extractor reads the leading pages of a PDF. A non-positive limit reads
// every page. Pages are returned in page order; pages without text are
// returned with empty Text so numbering is preserved.
type Extractor interface {
	Extract(ctx context.Context, path string, limit int) ([]types.PageText, error)
}

// Source supplies page text for a document name. The ranking pipeline
// depends on this rather than on files so tests can feed text directly.
type Source interface {
	Pages(ctx context.Context, document string, limit int) ([]types.PageText, error)
}

// DirSource resolves document names to files under Dir and extracts them.
type DirSource struct {
	Dir       string
	Extractor Extractor
}

// Pages extracts the named document. A missing file yields an error wrapping
// ErrMissingDocument.
func (s DirSource) Pages(ctx context.Context, document string, limit int) ([]types.PageText, error) {
	path := filepath.Join(s.Dir, document)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrMissingDocument)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	pages, err := s.Extractor.Extract(ctx, path, limit)
	if err != nil {
		return nil, err
	}
	for i := range pages {
		pages[i].Document = document
	}
	return pages, nil
}

// FallbackExtractor tries Primary and, if it fails, Secondary.
type FallbackExtractor struct {
	Primary   Extractor
	Secondary Extractor
	Log       zerolog.Logger
}

// Extract implements Extractor.
func (f FallbackExtractor) Extract(ctx context.Context, path string, limit int) ([]types.PageText, error) {
	pages, err := f.Primary.Extract(ctx, path, limit)
	if err == nil || f.Secondary == nil {
		return pages, err
	}
	f.Log.Debug().Err(err).Str("path", path).Msg("primary extractor failed, trying fallback")
	pages, ferr := f.Secondary.Extract(ctx, path, limit)
	if ferr != nil {
		return nil, fmt.Errorf("%w (fallback: %v)", err, ferr)
	}
	return pages, nil
}
