// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rank turns extracted page text into a persona-aware importance
// ordering. Candidate generation is a filter-then-map stage that runs per
// document in parallel; ranking is a single stable sort once every
// candidate has been collected.
package rank

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/persona-digest/internal/pdftext"
	"github.com/pdiddy/persona-digest/internal/relevance"
	"github.com/pdiddy/persona-digest/pkg/types"
)

// Pipeline scores and ranks the leading pages of a document set.
type Pipeline struct {
	scorer     *relevance.Scorer
	classifier *relevance.Classifier
	cfg        types.RankConfig
	log        zerolog.Logger
}

// New returns a pipeline. Zero config fields take their defaults.
func New(scorer *relevance.Scorer, classifier *relevance.Classifier, cfg types.RankConfig, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		scorer:     scorer,
		classifier: classifier,
		cfg:        cfg.WithDefaults(),
		log:        log,
	}
}

// Stats counts what happened to each document and page during a run.
type Stats struct {
	Documents        int `json:"documents"`
	SkippedDocuments int `json:"skipped_documents"`
	Pages            int `json:"pages"`
	EmptyPages       int `json:"empty_pages"`
	RejectedTitles   int `json:"rejected_titles"`
	Candidates       int `json:"candidates"`
}

func (s *Stats) add(o Stats) {
	s.Documents += o.Documents
	s.SkippedDocuments += o.SkippedDocuments
	s.Pages += o.Pages
	s.EmptyPages += o.EmptyPages
	s.RejectedTitles += o.RejectedTitles
	s.Candidates += o.Candidates
}

// DocumentWarning records a document that contributed no candidates because
// it could not be read.
type DocumentWarning struct {
	Document string
	Err      error
}

// Result is the outcome of one pipeline run.
type Result struct {
	Sections    []types.RankedSection
	Subsections []types.SubsectionRecord
	Warnings    []DocumentWarning
	Stats       Stats
}

// docResult is the per-document slot filled by a worker.
type docResult struct {
	candidates []types.CandidateSection
	stats      Stats
	err        error
}

// Run reads each document through src, builds candidates from at most
// MaxPages leading pages, and ranks them. Unreadable or missing documents
// are skipped and reported in Result.Warnings. Run only fails when ctx is
// cancelled.
func (p *Pipeline) Run(ctx context.Context, src pdftext.Source, documents []string, persona string) (Result, error) {
	if !p.scorer.Known(persona) {
		p.log.Warn().Str("persona", persona).Msg("unknown persona, all sections score 0")
	}

	slots := make([]docResult, len(documents))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Workers)

	for i, doc := range documents {
		i, doc := i, doc
		g.Go(func() error {
			pages, err := src.Pages(gctx, doc, p.cfg.MaxPages)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				slots[i] = docResult{err: err}
				return nil
			}
			cands, stats := p.Candidates(pages, persona)
			slots[i] = docResult{candidates: cands, stats: stats}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var (
		res Result
		all []types.CandidateSection
	)
	for i, slot := range slots {
		res.Stats.Documents++
		if slot.err != nil {
			res.Stats.SkippedDocuments++
			res.Warnings = append(res.Warnings, DocumentWarning{Document: documents[i], Err: slot.err})
			p.log.Warn().Err(slot.err).Str("document", documents[i]).Msg("skipping document")
			continue
		}
		res.Stats.add(slot.stats)
		all = append(all, slot.candidates...)
	}

	res.Sections = Rank(all)
	res.Subsections = Subsections(res.Sections, p.cfg.SnippetChars)
	return res, nil
}

// Candidates builds candidate sections from one document's pages, in page
// order, reading at most MaxPages pages. Empty pages and pages whose title
// is rejected are skipped.
func (p *Pipeline) Candidates(pages []types.PageText, persona string) ([]types.CandidateSection, Stats) {
	if len(pages) > p.cfg.MaxPages {
		pages = pages[:p.cfg.MaxPages]
	}

	var stats Stats
	out := make([]types.CandidateSection, 0, len(pages))
	for _, pg := range pages {
		stats.Pages++
		if strings.TrimSpace(pg.Text) == "" {
			stats.EmptyPages++
			p.log.Debug().Str("document", pg.Document).Int("page", pg.Page).Msg("empty page")
			continue
		}
		c, ok := p.Candidate(pg, persona)
		if !ok {
			stats.RejectedTitles++
			p.log.Debug().Str("document", pg.Document).Int("page", pg.Page).Msg("no usable title")
			continue
		}
		out = append(out, c)
	}
	stats.Candidates = len(out)
	return out, stats
}

// Candidate scores a single page. It reports false when the page has no
// usable title.
func (p *Pipeline) Candidate(pg types.PageText, persona string) (types.CandidateSection, bool) {
	title, ok := relevance.CleanTitle(pg.Text, p.cfg.TitleChars)
	if !ok {
		return types.CandidateSection{}, false
	}
	return types.CandidateSection{
		Document: pg.Document,
		Page:     pg.Page,
		Title:    title,
		Text:     pg.Text,
		Score:    p.scorer.Score(pg.Text, persona),
		Keywords: relevance.ExtractKeywords(relevance.Prefix(pg.Text, p.cfg.SnippetChars), p.cfg.MaxKeywords),
		Day:      p.classifier.Classify(pg.Text),
	}, true
}

// Rank orders candidates by descending score and assigns ranks 1..N.
// Equal scores keep their input order. The input slice is not modified.
func Rank(cands []types.CandidateSection) []types.RankedSection {
	sorted := make([]types.CandidateSection, len(cands))
	copy(sorted, cands)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	ranked := make([]types.RankedSection, len(sorted))
	for i, c := range sorted {
		ranked[i] = types.RankedSection{CandidateSection: c, ImportanceRank: i + 1}
	}
	return ranked
}

// Subsections projects ranked sections into refined-text records, keeping
// their order. Refined text is the first maxChars characters of the page.
func Subsections(ranked []types.RankedSection, maxChars int) []types.SubsectionRecord {
	out := make([]types.SubsectionRecord, len(ranked))
	for i, r := range ranked {
		out[i] = types.SubsectionRecord{
			Document:    r.Document,
			Title:       r.Title,
			RefinedText: relevance.Prefix(r.Text, maxChars),
			Page:        r.Page,
		}
	}
	return out
}
