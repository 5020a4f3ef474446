// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package relevance

import (
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name    string
		snippet string
		want    []string
	}{
		{
			name:    "orders by frequency",
			snippet: "beach hotel Beach museum beach hotel",
			want:    []string{"beach", "hotel", "museum"},
		},
		{
			name:    "ties keep first-seen order",
			snippet: "zebra apple mango apple zebra mango",
			want:    []string{"zebra", "apple", "mango"},
		},
		{
			name:    "drops short and non-alphabetic tokens",
			snippet: "city city city. tour 2024 hotels well-known Nice",
			want:    []string{"hotels"},
		},
		{
			name:    "caps at five",
			snippet: "alpha bravo charlie delta echoes foxtrot golfs",
			want:    []string{"alpha", "bravo", "charlie", "delta", "echoes"},
		},
		{
			name:    "empty when nothing qualifies",
			snippet: "a b c 12345 the and",
			want:    []string{},
		},
		{
			name:    "accented letters count as alphabetic",
			snippet: "Château château plage",
			want:    []string{"château", "plage"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractKeywords(tt.snippet, 5)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractKeywordsConstraints(t *testing.T) {
	snippet := "The Coastal Adventures guide covers beaches, hiking trails, WATER sports and " +
		"nightlife. Beaches along the coast offer water activities; hiking inland rewards " +
		"visitors with views. Nightlife centers on harbour towns."
	got := ExtractKeywords(snippet, 5)

	assert.LessOrEqual(t, len(got), 5)
	for _, kw := range got {
		assert.Greater(t, utf8.RuneCountInString(kw), 4, kw)
		for _, r := range kw {
			assert.True(t, unicode.IsLetter(r), kw)
			assert.False(t, unicode.IsUpper(r), kw)
		}
	}
	assert.Equal(t, []string{"hiking", "water", "coastal", "adventures", "guide"}, got)
}
