// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package relevance

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// minKeywordChars is exclusive: tokens must be longer than this.
const minKeywordChars = 4

// ExtractKeywords returns up to n of the most frequent salient words in
// snippet. A salient word is a whitespace-separated token of more than four
// letters and nothing else; counting is case-insensitive and results are
// lowercase. Ties keep first-seen order. The result is never nil.
func ExtractKeywords(snippet string, n int) []string {
	counts := make(map[string]int)
	var order []string

	for _, tok := range strings.Fields(snippet) {
		if utf8.RuneCountInString(tok) <= minKeywordChars || !isAlpha(tok) {
			continue
		}
		w := strings.ToLower(tok)
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if n >= 0 && len(order) > n {
		order = order[:n]
	}
	if order == nil {
		return []string{}
	}
	return order
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
