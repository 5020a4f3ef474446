// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pdiddy/persona-digest/internal/collection"
)

var rankCmd = &cobra.Command{
	Use:   "rank [collection-dirs...]",
	Short: "Rank collections and write their reports",
	Long: `Rank processes each collection directory: it reads challenge1b_input.json,
extracts the leading pages of every PDF under PDFs/, ranks them for the
persona, and writes challenge1b_output.json. Without arguments, every
directory under --base-dir whose name starts with "collection" is processed.

Missing PDFs and unreadable documents are skipped with a warning. A
collection without an input descriptor is skipped entirely.`,
	RunE: runRank,
}

func init() {
	rankCmd.Flags().String("base-dir", ".", "directory scanned for collection* directories")
	rankCmd.Flags().Bool("yaml", false, "also write challenge1b_output.yaml")

	mustBind("base_dir", rankCmd.Flags().Lookup("base-dir"))
	mustBind("write_yaml", rankCmd.Flags().Lookup("yaml"))

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := buildComponents(cfg)
	if err != nil {
		return err
	}

	dirs := args
	if len(dirs) == 0 {
		dirs, err = collection.Discover(cfg.BaseDir)
		if err != nil {
			return err
		}
		if len(dirs) == 0 {
			return fmt.Errorf("no collection directories found under %s", cfg.BaseDir)
		}
	}

	runner := &collection.Runner{
		Pipeline:  c.pipeline,
		Extractor: c.extractor,
		Log:       log.Logger,
		WriteYAML: cfg.WriteYAML,
	}
	result, err := runner.ProcessBatch(cmd.Context(), dirs, os.Stdout)
	if err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d collection(s) failed", result.Failed)
	}
	return nil
}
