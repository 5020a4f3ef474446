// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package relevance

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/persona-digest/pkg/types"
)

//go:embed profiles.yaml
var defaultProfilesYAML []byte

// PersonaProfile is the keyword set scored for one persona role.
type PersonaProfile struct {
	Role     string   `json:"role" yaml:"role"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// DayGroup is one ordered bucket of the day classifier.
type DayGroup struct {
	Day   types.DayBucket `json:"day" yaml:"day"`
	Name  string          `json:"name" yaml:"name"`
	Terms []string        `json:"terms" yaml:"terms"`
}

// Profiles is the on-disk configuration for scoring and classification.
type Profiles struct {
	Personas  []PersonaProfile `json:"personas" yaml:"personas"`
	DayGroups []DayGroup       `json:"day_groups" yaml:"day_groups"`
}

// ParseProfiles decodes a profiles document.
func ParseProfiles(data []byte) (Profiles, error) {
	var p Profiles
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profiles{}, fmt.Errorf("parsing profiles: %w", err)
	}
	return p, nil
}

// LoadProfiles reads a profiles document from path. An empty path returns
// the built-in profiles.
func LoadProfiles(path string) (Profiles, error) {
	if path == "" {
		return DefaultProfiles(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Profiles{}, fmt.Errorf("reading profiles %s: %w", path, err)
	}
	return ParseProfiles(data)
}

// DefaultProfiles returns the built-in profiles.
func DefaultProfiles() Profiles {
	p, err := ParseProfiles(defaultProfilesYAML)
	if err != nil {
		panic(err)
	}
	return p
}

// Build validates the profiles and returns the scorer and classifier they
// configure.
func (p Profiles) Build() (*Scorer, *Classifier, error) {
	scorer, err := NewScorer(p.Personas)
	if err != nil {
		return nil, nil, err
	}
	classifier, err := NewClassifier(p.DayGroups)
	if err != nil {
		return nil, nil, err
	}
	return scorer, classifier, nil
}

// normalizeTerms lowercases and trims terms, dropping blanks.
func normalizeTerms(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
