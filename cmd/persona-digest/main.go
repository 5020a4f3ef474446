// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the persona-digest CLI, which ranks
// the pages of PDF collections by relevance to a persona and writes a JSON
// report per collection.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the persona-digest CLI.
var rootCmd = &cobra.Command{
	Use:   "persona-digest",
	Short: "Rank PDF pages by relevance to a persona's task",
	Long: `persona-digest reads collections of PDFs together with a persona and a
job to be done, scores the leading pages of every document against the
persona's keyword profile, and writes a ranked JSON report for each
collection.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("verbose") {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./persona-digest.yaml or ~/.config/persona-digest/persona-digest.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "log skipped pages and extractor fallbacks")
	rootCmd.PersistentFlags().String("profiles", "", "persona profiles YAML (default: built-in profiles)")
	rootCmd.PersistentFlags().Int("max-pages", 0, "leading pages read per document (default 3)")
	rootCmd.PersistentFlags().Int("workers", 0, "documents processed concurrently (default 4)")
	rootCmd.PersistentFlags().Bool("pdftotext-fallback", false, "retry with pdftotext when the Go PDF reader fails")

	mustBind("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	mustBind("profiles_file", rootCmd.PersistentFlags().Lookup("profiles"))
	mustBind("rank.max_pages", rootCmd.PersistentFlags().Lookup("max-pages"))
	mustBind("rank.workers", rootCmd.PersistentFlags().Lookup("workers"))
	mustBind("pdftotext_fallback", rootCmd.PersistentFlags().Lookup("pdftotext-fallback"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("persona-digest")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "persona-digest"))
		}
	}

	bindEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.Debug().Str("file", viper.ConfigFileUsed()).Msg("using config file")
	}
}

// bindEnv maps PERSONA_DIGEST_* variables onto config keys; nested keys use
// underscores (rank.workers -> PERSONA_DIGEST_RANK_WORKERS).
func bindEnv() {
	viper.SetEnvPrefix("PERSONA_DIGEST")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
