// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import "github.com/pdiddy/persona-digest/pkg/types"

// Report assembles the output artifact from a run result. Both lists are
// non-nil so they encode as empty JSON arrays.
func (r Result) Report(meta types.ReportMetadata) types.Report {
	sections := make([]types.ExtractedSection, len(r.Sections))
	for i, s := range r.Sections {
		kws := s.Keywords
		if kws == nil {
			kws = []string{}
		}
		sections[i] = types.ExtractedSection{
			Document:       s.Document,
			SectionTitle:   s.Title,
			ImportanceRank: s.ImportanceRank,
			PageNumber:     s.Page,
			SuggestedDay:   s.Day,
			Keywords:       kws,
		}
	}

	subs := r.Subsections
	if subs == nil {
		subs = []types.SubsectionRecord{}
	}
	if meta.InputDocuments == nil {
		meta.InputDocuments = []string{}
	}

	return types.Report{
		Metadata:           meta,
		ExtractedSections:  sections,
		SubsectionAnalysis: subs,
	}
}
