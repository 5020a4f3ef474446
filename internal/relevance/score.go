// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package relevance

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Scorer computes a persona-conditioned relevance score for page text.
// It is immutable after construction and safe for concurrent use.
type Scorer struct {
	keywords map[string][]string
	roles    []string
}

// NewScorer builds a scorer from persona profiles. Roles must be unique and
// non-empty.
func NewScorer(profiles []PersonaProfile) (*Scorer, error) {
	s := &Scorer{keywords: make(map[string][]string, len(profiles))}
	for _, p := range profiles {
		role := strings.TrimSpace(p.Role)
		if role == "" {
			return nil, fmt.Errorf("persona profile with empty role")
		}
		if _, dup := s.keywords[role]; dup {
			return nil, fmt.Errorf("duplicate persona profile %q", role)
		}
		s.keywords[role] = normalizeTerms(p.Keywords)
		s.roles = append(s.roles, role)
	}
	return s, nil
}

// Score sums, over the persona's keywords, how many times each keyword
// appears as a substring of the lowercased text. Matches inside longer words
// count, and so do overlapping matches. Unknown personas score 0.
func (s *Scorer) Score(text, persona string) int {
	kws, ok := s.keywords[persona]
	if !ok || len(kws) == 0 {
		return 0
	}
	lower := strings.ToLower(text)
	score := 0
	for _, kw := range kws {
		score += countOverlapping(lower, kw)
	}
	return score
}

// countOverlapping counts every position at which sub starts in s.
func countOverlapping(s, sub string) int {
	if sub == "" {
		return 0
	}
	n := 0
	for {
		i := strings.Index(s, sub)
		if i < 0 {
			return n
		}
		n++
		_, size := utf8.DecodeRuneInString(s[i:])
		s = s[i+size:]
	}
}

// Known reports whether persona has a profile.
func (s *Scorer) Known(persona string) bool {
	_, ok := s.keywords[persona]
	return ok
}

// Keywords returns a copy of the persona's keywords in profile order.
func (s *Scorer) Keywords(persona string) []string {
	kws := s.keywords[persona]
	out := make([]string, len(kws))
	copy(out, kws)
	return out
}

// Personas lists profile roles in configuration order.
func (s *Scorer) Personas() []string {
	out := make([]string, len(s.roles))
	copy(out, s.roles)
	return out
}
