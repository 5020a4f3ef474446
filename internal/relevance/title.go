// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package relevance holds the pure per-page heuristics of the ranking
// pipeline: title cleaning, keyword extraction, persona scoring, and day
// classification. Nothing here does I/O except loading profiles.
package relevance

import (
	"strings"
	"unicode/utf8"
)

// minTitleChars is the shortest first line accepted as a title.
const minTitleChars = 5

// genericHeaders are first lines too generic to identify a section.
var genericHeaders = map[string]bool{
	"introduction": true,
	"overview":     true,
	"summary":      true,
	"conclusion":   true,
}

// CleanTitle derives a section title from the first line of page text and
// truncates it to maxChars characters. It reports false when the line is a
// generic header or shorter than five characters.
func CleanTitle(text string, maxChars int) (string, bool) {
	line := FirstLine(text)
	if genericHeaders[strings.ToLower(line)] {
		return "", false
	}
	if utf8.RuneCountInString(line) < minTitleChars {
		return "", false
	}
	return Prefix(line, maxChars), true
}

// FirstLine returns the trimmed first line of text after any leading
// whitespace, the line CleanTitle judges.
func FirstLine(text string) string {
	line := strings.TrimLeftFunc(text, isSpace)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

// Prefix returns the first n characters (runes) of s. A non-positive n
// returns s unchanged.
func Prefix(s string, n int) string {
	if n <= 0 {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' || r == '\v'
}
