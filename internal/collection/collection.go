// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package collection processes collection directories: it reads the input
// descriptor, ranks the referenced PDFs for the persona, and writes the
// report next to the input.
//
// A collection directory looks like:
//
//	Collection 1/
//	  challenge1b_input.json
//	  PDFs/*.pdf
//	  challenge1b_output.json   (written)
package collection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/persona-digest/internal/pdftext"
	"github.com/pdiddy/persona-digest/internal/rank"
	"github.com/pdiddy/persona-digest/pkg/types"
)

const (
	InputFile      = "challenge1b_input.json"
	OutputFile     = "challenge1b_output.json"
	YAMLOutputFile = "challenge1b_output.yaml"
	PDFDir         = "PDFs"

	// dirPrefix is matched case-insensitively against directory names.
	dirPrefix = "collection"
)

// ErrMissingInput is returned when a collection has no input descriptor.
var ErrMissingInput = errors.New("input descriptor not found")

// Status is the outcome of processing one collection.
type Status string

const (
	StatusProcessed Status = "processed"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// BatchResult holds the outcome of a batch run.
type BatchResult struct {
	Processed int
	Skipped   int
	Failed    int
}

// Total returns the number of collections visited.
func (r BatchResult) Total() int {
	return r.Processed + r.Skipped + r.Failed
}

// HasFailures reports whether any collection failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Runner processes collection directories with a shared pipeline.
type Runner struct {
	Pipeline  *rank.Pipeline
	Extractor pdftext.Extractor
	Log       zerolog.Logger

	// WriteYAML also writes YAMLOutputFile.
	WriteYAML bool

	// Now stamps reports; defaults to time.Now.
	Now func() time.Time
}

// ReadInput loads the descriptor from dir. A missing file yields an error
// wrapping ErrMissingInput.
func ReadInput(dir string) (types.CollectionInput, error) {
	path := filepath.Join(dir, InputFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.CollectionInput{}, fmt.Errorf("%s: %w", path, ErrMissingInput)
		}
		return types.CollectionInput{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var in types.CollectionInput
	if err := json.Unmarshal(data, &in); err != nil {
		return types.CollectionInput{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return in, nil
}

// Rank runs the pipeline over the collection in dir and returns the report
// without writing it.
func (r *Runner) Rank(ctx context.Context, dir string) (types.Report, rank.Result, error) {
	in, err := ReadInput(dir)
	if err != nil {
		return types.Report{}, rank.Result{}, err
	}

	src := pdftext.DirSource{Dir: filepath.Join(dir, PDFDir), Extractor: r.Extractor}
	res, err := r.Pipeline.Run(ctx, src, in.Filenames(), in.Persona.Role)
	if err != nil {
		return types.Report{}, rank.Result{}, err
	}

	report := res.Report(types.ReportMetadata{
		InputDocuments:      in.Filenames(),
		Persona:             in.Persona.Role,
		JobToBeDone:         in.JobToBeDone.Task,
		ProcessingTimestamp: r.now().UTC().Format(time.RFC3339Nano),
	})
	return report, res, nil
}

// Process ranks the collection in dir and writes its report.
func (r *Runner) Process(ctx context.Context, dir string) (rank.Result, error) {
	report, res, err := r.Rank(ctx, dir)
	if err != nil {
		return rank.Result{}, err
	}
	if err := WriteJSON(filepath.Join(dir, OutputFile), report); err != nil {
		return rank.Result{}, err
	}
	if r.WriteYAML {
		if err := WriteYAML(filepath.Join(dir, YAMLOutputFile), report); err != nil {
			return rank.Result{}, err
		}
	}
	return res, nil
}

// ProcessCollection processes one collection, printing its status to w.
func (r *Runner) ProcessCollection(ctx context.Context, dir string, w io.Writer) Status {
	name := filepath.Base(dir)
	res, err := r.Process(ctx, dir)
	switch {
	case errors.Is(err, ErrMissingInput):
		r.Log.Warn().Str("collection", dir).Msg("no input descriptor, skipping collection")
		fmt.Fprintf(w, "skipped:   %s (no %s)\n", name, InputFile)
		return StatusSkipped
	case err != nil:
		r.Log.Error().Err(err).Str("collection", dir).Msg("collection failed")
		fmt.Fprintf(w, "failed:    %s (%v)\n", name, err)
		return StatusFailed
	}

	fmt.Fprintf(w, "processed: %s (%d sections from %d documents", name, len(res.Sections), res.Stats.Documents)
	if res.Stats.SkippedDocuments > 0 {
		fmt.Fprintf(w, ", %d skipped", res.Stats.SkippedDocuments)
	}
	fmt.Fprintln(w, ")")
	return StatusProcessed
}

// ProcessBatch processes dirs in order, printing per-collection status and a
// summary to w. It stops early only when ctx is cancelled.
func (r *Runner) ProcessBatch(ctx context.Context, dirs []string, w io.Writer) (BatchResult, error) {
	var result BatchResult
	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		switch r.ProcessCollection(ctx, dir, w) {
		case StatusProcessed:
			result.Processed++
		case StatusSkipped:
			result.Skipped++
		case StatusFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d processed, %d skipped, %d failed (total: %d)\n",
		result.Processed, result.Skipped, result.Failed, result.Total())
	return result, nil
}

// Discover lists directories under baseDir whose name starts with
// "collection" (any case), in lexical order.
func Discover(baseDir string) ([]string, error) {
	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return nil, fmt.Errorf("reading base directory %s: %w", baseDir, err)
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() && strings.HasPrefix(strings.ToLower(e.Name()), dirPrefix) {
			dirs = append(dirs, filepath.Join(baseDir, e.Name()))
		}
	}
	return dirs, nil
}

// WriteJSON writes report as indented JSON.
func WriteJSON(path string, report types.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// WriteYAML writes report as YAML.
func WriteYAML(path string, report types.Report) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}
