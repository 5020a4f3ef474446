// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package relevance

import (
	"fmt"
	"strings"

	"github.com/pdiddy/persona-digest/pkg/types"
)

// Classifier maps page text to a day bucket by testing ordered term groups.
type Classifier struct {
	groups []DayGroup
}

// NewClassifier validates groups and returns a classifier that tests them in
// the given order. Buckets must be positive and distinct, and no term may
// appear in more than one group.
func NewClassifier(groups []DayGroup) (*Classifier, error) {
	seenDay := make(map[types.DayBucket]bool, len(groups))
	seenTerm := make(map[string]types.DayBucket)
	c := &Classifier{groups: make([]DayGroup, 0, len(groups))}

	for _, g := range groups {
		if g.Day <= types.DayUncategorized {
			return nil, fmt.Errorf("day group %q: bucket must be positive, got %d", g.Name, g.Day)
		}
		if seenDay[g.Day] {
			return nil, fmt.Errorf("day group %q: bucket %d defined twice", g.Name, g.Day)
		}
		seenDay[g.Day] = true

		terms := normalizeTerms(g.Terms)
		for _, t := range terms {
			if other, ok := seenTerm[t]; ok {
				return nil, fmt.Errorf("term %q appears in day groups %d and %d", t, other, g.Day)
			}
			seenTerm[t] = g.Day
		}
		c.groups = append(c.groups, DayGroup{Day: g.Day, Name: g.Name, Terms: terms})
	}
	return c, nil
}

// Classify returns the bucket of the first group with a term occurring in
// text, or DayUncategorized.
func (c *Classifier) Classify(text string) types.DayBucket {
	lower := strings.ToLower(text)
	for _, g := range c.groups {
		for _, t := range g.Terms {
			if strings.Contains(lower, t) {
				return g.Day
			}
		}
	}
	return types.DayUncategorized
}
