package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ChandlerFarnsworth/xlsx-autograder/internal/config"
	"github.com/ChandlerFarnsworth/xlsx-autograder/pkg/autograde"
	"github.com/ChandlerFarnsworth/xlsx-autograder/pkg/autograde/output"
)

var (
	solutionPath string
	pretty       bool
)

func newGradeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grade [student.xlsx]",
		Short: "Grade a workbook locally with full diagnostics",
		Long: `grade scores a single workbook against an answer key and prints the
rich result JSON, including raw match counts and hidden-test counts.
This output is for local debugging and is never shown to learners.`,
		Args: cobra.ExactArgs(1),
		RunE: runGrade,
	}

	cmd.Flags().StringVarP(&solutionPath, "solution", "s", "solution.xlsx", "Reference answer key workbook")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	return cmd
}

func runGrade(cmd *cobra.Command, args []string) error {
	studentPath := args[0]

	// Validate input file exists
	if _, err := os.Stat(studentPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", studentPath)
	}

	gradingCfg := autograde.DefaultConfig()
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config failed: %w", err)
		}
		gradingCfg = cfg.GradingConfig()
	}

	result := autograde.Grade(studentPath, solutionPath, gradingCfg)

	jsonData, err := output.ResultToJSON(result, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Println(string(jsonData))

	return nil
}
