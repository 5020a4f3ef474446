package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var personasCmd = &cobra.Command{
	Use:   "personas",
	Short: "List persona profiles and their keywords",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c, err := buildComponents(cfg)
		if err != nil {
			return err
		}
		for _, role := range c.scorer.Personas() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-20s  %s\n", role, strings.Join(c.scorer.Keywords(role), ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(personasCmd)
}
