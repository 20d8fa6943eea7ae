// Package platform runs the coursework-platform submission flow: gate
// on the part id, locate the upload, copy it into place, grade it, and
// emit the feedback payload.
package platform

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ChandlerFarnsworth/xlsx-autograder/internal/config"
	"github.com/ChandlerFarnsworth/xlsx-autograder/pkg/autograde"
	"github.com/ChandlerFarnsworth/xlsx-autograder/pkg/autograde/models"
	"github.com/ChandlerFarnsworth/xlsx-autograder/pkg/autograde/output"
)

// Learner-facing messages for failures before grading starts.
const (
	msgWrongPart    = "Please verify that you have submitted to the proper part of the assignment."
	msgBadExtension = "Your submission file does not have the right file extension. Please submit an Excel file (.xlsx, .xlsm)."
	msgCopyFailure  = "Error processing your submission file."
)

// Runner executes one submission flow.
type Runner struct {
	cfg *config.AppConfig
	// out receives the feedback JSON the platform reads (stdout in
	// production).
	out io.Writer
	// log carries diagnostics to stderr; the platform never reads it.
	log *logrus.Logger
}

// New builds a Runner. A nil logger gets a stderr default.
func New(cfg *config.AppConfig, out io.Writer, log *logrus.Logger) *Runner {
	if log == nil {
		log = logrus.New()
	}
	return &Runner{cfg: cfg, out: out, log: log}
}

// Run grades the submission identified by partID. It always emits a
// feedback payload, even when grading never starts.
func (r *Runner) Run(partID string) models.Result {
	if partID != r.cfg.Assignment.PartID {
		r.log.WithField("partId", partID).Warn("part id does not match the configured assignment")
		return r.emit(models.ZeroResult(models.ErrorConfig, msgWrongPart))
	}

	learnerFile, err := findSubmission(r.cfg.Paths.SubmissionDir)
	if err != nil {
		r.log.WithError(err).Warn("no gradable submission found")
		return r.emit(models.ZeroResult(models.ErrorMissingInput, msgBadExtension))
	}

	if err := copyFile(learnerFile, r.cfg.Paths.SubmissionDest); err != nil {
		r.log.WithError(err).Error("copying submission failed")
		return r.emit(models.ZeroResult(models.ErrorMissingInput, msgCopyFailure))
	}

	result := autograde.Grade(r.cfg.Paths.SubmissionDest, r.cfg.Paths.SolutionFile, r.cfg.GradingConfig())
	return r.emit(result)
}

// emit writes the redacted platform payload to out and to the feedback
// file. A feedback-file write failure is logged but not fatal: the
// stdout copy already reached the platform.
func (r *Runner) emit(result models.Result) models.Result {
	payload, err := output.FeedbackToJSON(result.Platform())
	if err != nil {
		r.log.WithError(err).Error("encoding feedback failed")
		return result
	}
	fmt.Fprintln(r.out, string(payload))

	if path := r.cfg.Paths.FeedbackFile; path != "" {
		if err := os.WriteFile(path, payload, 0644); err != nil {
			r.log.WithError(err).Error("writing feedback file failed")
		}
	}
	return result
}

// findSubmission returns the first file in dir with an accepted
// spreadsheet extension.
func findSubmission(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".xlsx", ".xlsm":
			return filepath.Join(dir, e.Name()), nil
		}
	}
	return "", fmt.Errorf("no .xlsx or .xlsm file in %s", dir)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
