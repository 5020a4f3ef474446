package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigReadsNestedEnv(t *testing.T) {
	t.Setenv("PERSONA_DIGEST_RANK_WORKERS", "7")
	t.Setenv("PERSONA_DIGEST_RANK_MAX_PAGES", "2")
	t.Setenv("PERSONA_DIGEST_BASE_DIR", "/data/collections")
	bindEnv()

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Rank.Workers)
	assert.Equal(t, 2, cfg.Rank.MaxPages)
	assert.Equal(t, "/data/collections", cfg.BaseDir)
	assert.Equal(t, 500, cfg.Rank.SnippetChars)
}
