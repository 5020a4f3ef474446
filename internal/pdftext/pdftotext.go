// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/pdiddy/persona-digest/pkg/types"
)

// PdftotextExtractor shells out to poppler's pdftotext. Pages are split on
// the form feed pdftotext writes after each page.
type PdftotextExtractor struct {
	// Binary defaults to "pdftotext".
	Binary string
}

// Available reports whether the binary can be found on PATH.
func (p PdftotextExtractor) Available() bool {
	_, err := exec.LookPath(p.binary())
	return err == nil
}

// Extract implements Extractor.
func (p PdftotextExtractor) Extract(ctx context.Context, path string, limit int) ([]types.PageText, error) {
	args := []string{"-layout", "-enc", "UTF-8"}
	if limit > 0 {
		args = append(args, "-f", "1", "-l", strconv.Itoa(limit))
	}
	args = append(args, path, "-")

	out, err := exec.CommandContext(ctx, p.binary(), args...).Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext %s: %w", path, err)
	}
	return splitPages(string(out), limit), nil
}

func (p PdftotextExtractor) binary() string {
	if p.Binary != "" {
		return p.Binary
	}
	return "pdftotext"
}

// splitPages splits form-feed separated output into numbered pages. The
// trailing form feed after the last page does not start a new page.
func splitPages(text string, limit int) []types.PageText {
	text = strings.TrimSuffix(text, "\f")
	if text == "" {
		return []types.PageText{}
	}
	parts := strings.Split(text, "\f")
	if limit > 0 && len(parts) > limit {
		parts = parts[:limit]
	}
	pages := make([]types.PageText, len(parts))
	for i, part := range parts {
		pages[i] = types.PageText{Page: i + 1, Text: part}
	}
	return pages
}
