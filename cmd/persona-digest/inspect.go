// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/persona-digest/internal/rank"
	"github.com/pdiddy/persona-digest/internal/relevance"
	"github.com/pdiddy/persona-digest/pkg/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [pdf]",
	Short: "Show title, score, day, and keywords for the leading pages of one PDF",
	Long: `Inspect extracts the leading pages of a single PDF and prints what the
ranking pipeline derives from each: the cleaned title (or why the page is
dropped), the persona score, the day bucket, and the keywords.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().String("persona", "Travel Planner", "persona role to score against")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	persona, _ := cmd.Flags().GetString("persona")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := buildComponents(cfg)
	if err != nil {
		return err
	}

	pages, err := c.extractor.Extract(cmd.Context(), args[0], cfg.Rank.MaxPages)
	if err != nil {
		return err
	}
	doc := filepath.Base(args[0])
	for i := range pages {
		pages[i].Document = doc
	}
	formatInspect(os.Stdout, c.pipeline, pages, persona, cfg.Rank.TitleChars)
	return nil
}

func formatInspect(w io.Writer, p *rank.Pipeline, pages []types.PageText, persona string, titleChars int) {
	fmt.Fprintf(w, "%-4s  %-50s  %-5s  %-3s  %s\n", "Page", "Title", "Score", "Day", "Keywords")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for _, pg := range pages {
		if strings.TrimSpace(pg.Text) == "" {
			fmt.Fprintf(w, "%-4d  (empty page)\n", pg.Page)
			continue
		}
		c, ok := p.Candidate(pg, persona)
		if !ok {
			fmt.Fprintf(w, "%-4d  (no usable title: %q)\n", pg.Page, relevance.Prefix(relevance.FirstLine(pg.Text), titleChars))
			continue
		}
		fmt.Fprintf(w, "%-4d  %-50s  %-5d  %-3d  %s\n",
			c.Page, truncate(c.Title, 50), c.Score, c.Day, strings.Join(c.Keywords, ", "))
	}
}

func truncate(s string, max int) string {
	if len([]rune(s)) <= max {
		return s
	}
	return relevance.Prefix(s, max-3) + "..."
}
