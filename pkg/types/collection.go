// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// InputDocument names one PDF in a collection's input descriptor.
type InputDocument struct {
	Filename string `json:"filename" yaml:"filename"`
	Title    string `json:"title,omitempty" yaml:"title,omitempty"`
}

// PersonaRef carries the persona role string from the input descriptor.
type PersonaRef struct {
	Role string `json:"role" yaml:"role"`
}

// JobRef carries the task the persona wants done.
type JobRef struct {
	Task string `json:"task" yaml:"task"`
}

// ChallengeInfo is descriptive metadata some descriptors carry. It is read
// but does not affect ranking.
type ChallengeInfo struct {
	ChallengeID string `json:"challenge_id,omitempty" yaml:"challenge_id,omitempty"`
	TestCase    string `json:"test_case_name,omitempty" yaml:"test_case_name,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// CollectionInput is the descriptor read from a collection's input JSON.
type CollectionInput struct {
	Challenge   *ChallengeInfo  `json:"challenge_info,omitempty" yaml:"challenge_info,omitempty"`
	Documents   []InputDocument `json:"documents" yaml:"documents"`
	Persona     PersonaRef      `json:"persona" yaml:"persona"`
	JobToBeDone JobRef          `json:"job_to_be_done" yaml:"job_to_be_done"`
}

// Filenames returns the document filenames in input order.
func (in CollectionInput) Filenames() []string {
	names := make([]string, len(in.Documents))
	for i, d := range in.Documents {
		names[i] = d.Filename
	}
	return names
}

// ReportMetadata is the metadata block of a Report.
type ReportMetadata struct {
	InputDocuments      []string `json:"input_documents" yaml:"input_documents"`
	Persona             string   `json:"persona" yaml:"persona"`
	JobToBeDone         string   `json:"job_to_be_done" yaml:"job_to_be_done"`
	ProcessingTimestamp string   `json:"processing_timestamp" yaml:"processing_timestamp"`
}

// ExtractedSection is one entry of the report's extracted_sections list.
type ExtractedSection struct {
	Document       string    `json:"document" yaml:"document"`
	SectionTitle   string    `json:"section_title" yaml:"section_title"`
	ImportanceRank int       `json:"importance_rank" yaml:"importance_rank"`
	PageNumber     int       `json:"page_number" yaml:"page_number"`
	SuggestedDay   DayBucket `json:"suggested_day" yaml:"suggested_day"`
	Keywords       []string  `json:"keywords" yaml:"keywords"`
}

// Report is the full artifact written for one collection.
type Report struct {
	Metadata           ReportMetadata     `json:"metadata" yaml:"metadata"`
	ExtractedSections  []ExtractedSection `json:"extracted_sections" yaml:"extracted_sections"`
	SubsectionAnalysis []SubsectionRecord `json:"subsection_analysis" yaml:"subsection_analysis"`
}
