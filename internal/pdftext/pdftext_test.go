// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/persona-digest/pkg/types"
)

// fakeExtractor returns fixed pages or a fixed error and records calls.
type fakeExtractor struct {
	pages []types.PageText
	err   error
	calls []string
}

func (f *fakeExtractor) Extract(_ context.Context, path string, limit int) ([]types.PageText, error) {
	f.calls = append(f.calls, path)
	if f.err != nil {
		return nil, f.err
	}
	out := make([]types.PageText, len(f.pages))
	copy(out, f.pages)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func TestDirSourceMissingDocument(t *testing.T) {
	fx := &fakeExtractor{}
	src := DirSource{Dir: t.TempDir(), Extractor: fx}

	_, err := src.Pages(context.Background(), "absent.pdf", 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingDocument))
	assert.Empty(t, fx.calls, "extractor must not run for a missing file")
}

func TestDirSourceSetsDocumentName(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "guide.pdf"), []byte("%PDF-1.4"), 0o644))

	fx := &fakeExtractor{pages: []types.PageText{
		{Page: 1, Text: "one"}, {Page: 2, Text: "two"}, {Page: 3, Text: "three"}, {Page: 4, Text: "four"},
	}}
	src := DirSource{Dir: dir, Extractor: fx}

	pages, err := src.Pages(context.Background(), "guide.pdf", 3)
	require.NoError(t, err)
	require.Len(t, pages, 3)
	for i, p := range pages {
		assert.Equal(t, "guide.pdf", p.Document)
		assert.Equal(t, i+1, p.Page)
	}
	assert.Equal(t, []string{filepath.Join(dir, "guide.pdf")}, fx.calls)
}

func TestDirSourceExtractorError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.pdf"), []byte("junk"), 0o644))

	boom := errors.New("corrupt xref")
	src := DirSource{Dir: dir, Extractor: &fakeExtractor{err: boom}}

	_, err := src.Pages(context.Background(), "bad.pdf", 3)
	assert.ErrorIs(t, err, boom)
	assert.False(t, errors.Is(err, ErrMissingDocument))
}

func TestFallbackExtractor(t *testing.T) {
	primaryErr := errors.New("primary failed")
	want := []types.PageText{{Page: 1, Text: "from fallback"}}

	tests := []struct {
		name      string
		primary   *fakeExtractor
		secondary Extractor
		want      []types.PageText
		wantErr   bool
	}{
		{
			name:      "primary succeeds",
			primary:   &fakeExtractor{pages: []types.PageText{{Page: 1, Text: "primary"}}},
			secondary: &fakeExtractor{err: errors.New("unused")},
			want:      []types.PageText{{Page: 1, Text: "primary"}},
		},
		{
			name:      "falls back",
			primary:   &fakeExtractor{err: primaryErr},
			secondary: &fakeExtractor{pages: want},
			want:      want,
		},
		{
			name:      "both fail",
			primary:   &fakeExtractor{err: primaryErr},
			secondary: &fakeExtractor{err: errors.New("secondary failed")},
			wantErr:   true,
		},
		{
			name:    "no fallback configured",
			primary: &fakeExtractor{err: primaryErr},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FallbackExtractor{Primary: tt.primary, Secondary: tt.secondary, Log: zerolog.Nop()}
			got, err := f.Extract(context.Background(), "x.pdf", 3)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, primaryErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLibExtractorRejectsNonPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.pdf")
	require.NoError(t, os.WriteFile(path, []byte("plain text, not a PDF"), 0o644))

	_, err := LibExtractor{}.Extract(context.Background(), path, 3)
	assert.Error(t, err)
}

const fixturePDF = "testdata/guide.pdf"

func TestLibExtractorReadsFixture(t *testing.T) {
	pages, err := LibExtractor{}.Extract(context.Background(), fixturePDF, 0)
	require.NoError(t, err)
	require.Len(t, pages, 3)

	for i, p := range pages {
		assert.Equal(t, i+1, p.Page)
	}
	assert.Contains(t, pages[0].Text, "Nice Guide")
	assert.Contains(t, pages[0].Text, "Visit Nice and enjoy the city.")
	assert.Contains(t, pages[1].Text, "Hotel Listings")
	assert.Contains(t, pages[2].Text, "Packing Tips")
}

func TestLibExtractorHonoursLimit(t *testing.T) {
	pages, err := LibExtractor{}.Extract(context.Background(), fixturePDF, 2)
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Contains(t, pages[1].Text, "Hotel Listings")
}

func TestDirSourceWithLibExtractor(t *testing.T) {
	src := DirSource{Dir: "testdata", Extractor: LibExtractor{}}
	pages, err := src.Pages(context.Background(), "guide.pdf", 3)
	require.NoError(t, err)
	require.Len(t, pages, 3)
	assert.Equal(t, "guide.pdf", pages[0].Document)
}

func TestPdftotextExtractorReadsFixture(t *testing.T) {
	x := PdftotextExtractor{}
	if !x.Available() {
		t.Skip("pdftotext not installed")
	}

	pages, err := x.Extract(context.Background(), fixturePDF, 2)
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Contains(t, pages[0].Text, "Nice Guide")
	assert.Contains(t, pages[1].Text, "Hotel Listings")
}

func TestPdftotextExtractorMissingBinary(t *testing.T) {
	x := PdftotextExtractor{Binary: "pdftotext-does-not-exist"}
	assert.False(t, x.Available())
	_, err := x.Extract(context.Background(), fixturePDF, 1)
	assert.Error(t, err)
}

func TestSplitPages(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  []string
	}{
		{name: "trailing form feed", text: "one\ftwo\f", want: []string{"one", "two"}},
		{name: "blank page kept", text: "one\f\fthree\f", want: []string{"one", "", "three"}},
		{name: "limit", text: "a\fb\fc\fd\f", limit: 2, want: []string{"a", "b"}},
		{name: "empty output", text: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitPages(tt.text, tt.limit)
			require.Len(t, got, len(tt.want))
			for i, p := range got {
				assert.Equal(t, i+1, p.Page)
				assert.Equal(t, tt.want[i], p.Text)
			}
		})
	}
}
