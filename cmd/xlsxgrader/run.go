package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ChandlerFarnsworth/xlsx-autograder/internal/config"
	"github.com/ChandlerFarnsworth/xlsx-autograder/internal/platform"
	"github.com/ChandlerFarnsworth/xlsx-autograder/pkg/autograde/models"
	"github.com/ChandlerFarnsworth/xlsx-autograder/pkg/autograde/output"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the platform submission flow",
		Long: `run executes the coursework-platform flow: it validates the partId
environment variable, locates the uploaded submission, grades it against
the reference answer key and emits the feedback payload on stdout and to
the feedback file.`,
		Args: cobra.NoArgs,
		RunE: runPlatform,
	}
}

func runPlatform(cmd *cobra.Command, args []string) error {
	logger := logrus.New()

	cfg, err := config.Load(configPath)
	if err != nil {
		// Still emit a zero-score payload so the platform never hangs
		// waiting for feedback.
		logger.WithError(err).Error("loading configuration failed")
		payload, _ := output.FeedbackToJSON(models.Feedback{
			Feedback: "Error processing your submission file.",
		})
		fmt.Println(string(payload))
		return nil
	}

	runner := platform.New(cfg, os.Stdout, logger)
	runner.Run(os.Getenv("partId"))
	return nil
}
