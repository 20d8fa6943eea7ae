// Package main provides the CLI entry point for xlsx-autograder.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "xlsxgrader",
		Short: "Grade spreadsheet assignment submissions",
		Long: `xlsxgrader compares learner-provided cell values against a reference
answer key and produces a fractional score with feedback.`,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (optional, yaml)")

	rootCmd.AddCommand(newRunCmd(), newGradeCmd(), newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
