package types

// Defaults applied when a RankConfig field is zero. SnippetChars, TitleChars,
// and MaxKeywords are also upper bounds: the report format caps refined text
// at 500 characters, titles at 100, and keywords at 5.
const (
	DefaultMaxPages     = 3
	DefaultSnippetChars = 500
	DefaultTitleChars   = 100
	DefaultMaxKeywords  = 5
	DefaultWorkers      = 4
)

// RankConfig holds settings for the ranking pipeline.
type RankConfig struct {
	// MaxPages is the number of leading pages read per document (default 3).
	MaxPages int `json:"max_pages" yaml:"max_pages" mapstructure:"max_pages"`

	// SnippetChars bounds the refined text and the keyword snippet (default and maximum 500).
	SnippetChars int `json:"snippet_chars" yaml:"snippet_chars" mapstructure:"snippet_chars"`

	// TitleChars bounds the section title (default and maximum 100).
	TitleChars int `json:"title_chars" yaml:"title_chars" mapstructure:"title_chars"`

	// MaxKeywords is the number of keywords kept per section (default and maximum 5).
	MaxKeywords int `json:"max_keywords" yaml:"max_keywords" mapstructure:"max_keywords"`

	// Workers bounds concurrent candidate generation across documents (default 4).
	Workers int `json:"workers" yaml:"workers" mapstructure:"workers"`
}

// WithDefaults returns a copy of c with zero fields replaced by defaults and
// the output limits clamped to their maximums.
func (c RankConfig) WithDefaults() RankConfig {
	if c.MaxPages <= 0 {
		c.MaxPages = DefaultMaxPages
	}
	if c.SnippetChars <= 0 || c.SnippetChars > DefaultSnippetChars {
		c.SnippetChars = DefaultSnippetChars
	}
	if c.TitleChars <= 0 || c.TitleChars > DefaultTitleChars {
		c.TitleChars = DefaultTitleChars
	}
	if c.MaxKeywords <= 0 || c.MaxKeywords > DefaultMaxKeywords {
		c.MaxKeywords = DefaultMaxKeywords
	}
	if c.Workers <= 0 {
		c.Workers = DefaultWorkers
	}
	return c
}

// CollectionConfig holds settings for discovering and processing collections.
type CollectionConfig struct {
	Rank RankConfig `json:"rank" yaml:"rank" mapstructure:"rank"`

	// BaseDir is scanned for collection directories (default ".").
	BaseDir string `json:"base_dir" yaml:"base_dir" mapstructure:"base_dir"`

	// ProfilesFile replaces the built-in persona profiles when set.
	ProfilesFile string `json:"profiles_file,omitempty" yaml:"profiles_file,omitempty" mapstructure:"profiles_file"`

	// PdftotextFallback enables the pdftotext binary when the Go PDF reader fails.
	PdftotextFallback bool `json:"pdftotext_fallback" yaml:"pdftotext_fallback" mapstructure:"pdftotext_fallback"`

	// WriteYAML also writes a YAML copy of each report.
	WriteYAML bool `json:"write_yaml" yaml:"write_yaml" mapstructure:"write_yaml"`
}
