// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/persona-digest/internal/pdftext"
	"github.com/pdiddy/persona-digest/internal/rank"
	"github.com/pdiddy/persona-digest/internal/relevance"
	"github.com/pdiddy/persona-digest/pkg/types"
)

func mustBind(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", flag.Name, err))
	}
}

// loadConfig merges the config file, environment, and flags.
func loadConfig() (types.CollectionConfig, error) {
	var cfg types.CollectionConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.BaseDir == "" {
		cfg.BaseDir = "."
	}
	cfg.Rank = cfg.Rank.WithDefaults()
	return cfg, nil
}

// components wires the scorer, pipeline, and extractor from cfg.
type components struct {
	scorer    *relevance.Scorer
	pipeline  *rank.Pipeline
	extractor pdftext.Extractor
}

func buildComponents(cfg types.CollectionConfig) (components, error) {
	profiles, err := relevance.LoadProfiles(cfg.ProfilesFile)
	if err != nil {
		return components{}, err
	}
	scorer, classifier, err := profiles.Build()
	if err != nil {
		return components{}, fmt.Errorf("profiles: %w", err)
	}

	var extractor pdftext.Extractor = pdftext.LibExtractor{}
	if cfg.PdftotextFallback {
		fallback := pdftext.PdftotextExtractor{}
		if fallback.Available() {
			extractor = pdftext.FallbackExtractor{Primary: extractor, Secondary: fallback, Log: log.Logger}
		} else {
			log.Warn().Msg("pdftotext not found on PATH, fallback disabled")
		}
	}

	return components{
		scorer:    scorer,
		pipeline:  rank.New(scorer, classifier, cfg.Rank, log.Logger),
		extractor: extractor,
	}, nil
}
