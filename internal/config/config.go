// Package config loads grader deployment configuration from defaults,
// an optional config file and environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/ChandlerFarnsworth/xlsx-autograder/pkg/autograde"
)

// Assignment holds the per-assignment grading scheme.
type Assignment struct {
	// PartID is the platform part identifier submissions must target.
	PartID string `mapstructure:"part_id"`
	// StudentSheet is the sheet name expected in the submission.
	StudentSheet string `mapstructure:"student_sheet"`
	// SolutionSheet is the sheet name expected in the answer key.
	SolutionSheet string `mapstructure:"solution_sheet"`
	// HiddenCells lists the hidden test cells in check order.
	HiddenCells []autograde.HiddenCell `mapstructure:"hidden_cells"`
	// IndicatorRow is the row holding the public flags.
	IndicatorRow int `mapstructure:"indicator_row"`
	// IndicatorStartColumn is the first scored column.
	IndicatorStartColumn int `mapstructure:"indicator_start_column"`
	// IndicatorWeight and HiddenWeight combine the two pass scores.
	IndicatorWeight float64 `mapstructure:"indicator_weight"`
	HiddenWeight    float64 `mapstructure:"hidden_weight"`
}

// Paths holds the fixed file-system locations of the platform flow.
type Paths struct {
	// SubmissionDir is scanned for the learner's uploaded file.
	SubmissionDir string `mapstructure:"submission_dir"`
	// SubmissionDest is where the accepted upload is copied before
	// grading.
	SubmissionDest string `mapstructure:"submission_dest"`
	// SolutionFile is the reference answer key.
	SolutionFile string `mapstructure:"solution_file"`
	// FeedbackFile receives the platform feedback payload.
	FeedbackFile string `mapstructure:"feedback_file"`
}

// AppConfig is the full grader configuration.
type AppConfig struct {
	Assignment Assignment `mapstructure:"assignment"`
	Paths      Paths      `mapstructure:"paths"`
}

// GradingConfig converts the assignment section into the scorer's
// Config.
func (c *AppConfig) GradingConfig() autograde.Config {
	return autograde.Config{
		StudentSheet:         c.Assignment.StudentSheet,
		SolutionSheet:        c.Assignment.SolutionSheet,
		HiddenCells:          c.Assignment.HiddenCells,
		IndicatorRow:         c.Assignment.IndicatorRow,
		IndicatorStartColumn: c.Assignment.IndicatorStartColumn,
		IndicatorWeight:      c.Assignment.IndicatorWeight,
		HiddenWeight:         c.Assignment.HiddenWeight,
	}
}

// Load reads configuration in increasing precedence: built-in
// defaults, the config file at configPath (if non-empty), then
// GRADER_* environment variables.
func Load(configPath string) (*AppConfig, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configPath, err)
		}
	}

	v.SetEnvPrefix("GRADER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// setDefaults mirrors the stock deployment of the grader container.
func setDefaults(v *viper.Viper) {
	v.SetDefault("assignment.part_id", "Lg9eS")
	v.SetDefault("assignment.student_sheet", "blank")
	v.SetDefault("assignment.solution_sheet", "solution")
	v.SetDefault("assignment.indicator_row", 1)
	v.SetDefault("assignment.indicator_start_column", 5)
	v.SetDefault("assignment.indicator_weight", 0.8)
	v.SetDefault("assignment.hidden_weight", 0.2)
	v.SetDefault("assignment.hidden_cells", []map[string]string{
		{"cell": "AD21", "description": "Financial calculation test"},
		{"cell": "M62", "description": "Data processing test"},
		{"cell": "AE187", "description": "Formula application test"},
	})

	v.SetDefault("paths.submission_dir", "/shared/submission")
	v.SetDefault("paths.submission_dest", "/grader/submission.xlsx")
	v.SetDefault("paths.solution_file", "/grader/solution.xlsx")
	v.SetDefault("paths.feedback_file", "/shared/feedback.json")
}
