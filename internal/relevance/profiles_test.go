// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package relevance

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProfiles(t *testing.T) {
	p := DefaultProfiles()
	require.Len(t, p.DayGroups, 4)

	s, _ := defaultComponents(t)
	assert.Equal(t, []string{"Travel Planner", "HR professional", "Food Contractor"}, s.Personas())
	assert.Equal(t,
		[]string{"city", "cities", "hotel", "stay", "restaurant", "attraction", "activity", "culture", "tip"},
		s.Keywords("Travel Planner"))
}

func TestLoadProfiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
personas:
  - role: Sommelier
    keywords: [wine, grape]
day_groups:
  - day: 2
    name: drink
    terms: [wine]
`), 0o644))

	p, err := LoadProfiles(path)
	require.NoError(t, err)
	s, c, err := p.Build()
	require.NoError(t, err)

	assert.Equal(t, 3, s.Score("Wine, grapes and more wine", "Sommelier"))
	assert.Equal(t, 0, s.Score("city hotel", "Travel Planner"))
	assert.EqualValues(t, 2, c.Classify("a wine list"))
}

func TestLoadProfilesErrors(t *testing.T) {
	_, err := LoadProfiles(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = ParseProfiles([]byte("personas: [unterminated"))
	assert.Error(t, err)
}

func TestLoadProfilesEmptyPathUsesDefaults(t *testing.T) {
	p, err := LoadProfiles("")
	require.NoError(t, err)
	assert.Equal(t, DefaultProfiles(), p)
}
