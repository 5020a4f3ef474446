// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the persona-digest pipeline:
// page text produced by extraction, the candidate and ranked sections built
// from it, the collection input descriptor, and the emitted report.
package types

// PageText is the raw text of one PDF page as produced by an extractor.
type PageText struct {
	// Document is the filename the page belongs to (e.g. "South of France - Cities.pdf").
	Document string `json:"document" yaml:"document"`

	// Page is the 1-based page number.
	Page int `json:"page" yaml:"page"`

	// Text is the extracted page text, unmodified.
	Text string `json:"text" yaml:"text"`
}

// DayBucket is the coarse topical label attached to a section as a planning aid.
// Zero means uncategorized.
type DayBucket int

const (
	DayUncategorized DayBucket = 0
	DayPlaces        DayBucket = 1
	DayFoodLodging   DayBucket = 2
	DayActivities    DayBucket = 3
	DayLogistics     DayBucket = 4
)

// CandidateSection is a page that passed title filtering and is eligible for
// ranking. Title is never empty.
type CandidateSection struct {
	Document string    `json:"document" yaml:"document"`
	Page     int       `json:"page_number" yaml:"page_number"`
	Title    string    `json:"section_title" yaml:"section_title"`
	Text     string    `json:"-" yaml:"-"`
	Score    int       `json:"score" yaml:"score"`
	Keywords []string  `json:"keywords" yaml:"keywords"`
	Day      DayBucket `json:"suggested_day" yaml:"suggested_day"`
}

// RankedSection is a CandidateSection with its final 1-based importance rank.
type RankedSection struct {
	CandidateSection `yaml:",inline"`

	ImportanceRank int `json:"importance_rank" yaml:"importance_rank"`
}

// SubsectionRecord projects a RankedSection into the refined-text view of
// the report. RefinedText is a prefix of the page text.
type SubsectionRecord struct {
	Document    string `json:"document" yaml:"document"`
	Title       string `json:"section_title" yaml:"section_title"`
	RefinedText string `json:"refined_text" yaml:"refined_text"`
	Page        int    `json:"page_number" yaml:"page_number"`
}
