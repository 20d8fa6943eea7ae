// Package service exposes grading over HTTP for local course
// development: a health endpoint and a multipart upload endpoint that
// grades a submission against the configured answer key.
package service

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/ChandlerFarnsworth/xlsx-autograder/internal/config"
	"github.com/ChandlerFarnsworth/xlsx-autograder/pkg/autograde"
)

// GraderService serves grading requests for one configured assignment.
type GraderService struct {
	// embedded web server handling grade requests
	e *echo.Echo
	// the unique name of this service when running multiple instances
	serviceName string
	// the unique id of this service when running multiple instances
	serviceID string
	// the host address this service instance is running on
	serviceHost string
	// the port that this service instance is running on
	servicePort int
	// deployment config: answer key location and grading scheme
	cfg *config.AppConfig
}

// New creates a new service instance.
func New(options ...Option) (*GraderService, error) {
	srvc := GraderService{}

	if err := srvc.setOptions(options...); err != nil {
		return nil, err
	}

	srvc.e = echo.New()
	srvc.e.HideBanner = true
	srvc.e.Logger.SetLevel(log.INFO)
	// pingable method to know we're up
	srvc.e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, "OK")
	})
	srvc.e.POST("/grade", srvc.buildGradeHandler())

	return &srvc, nil
}

// buildGradeHandler creates the grading endpoint. It accepts a
// multipart upload in the "submission" field and responds with the
// rich grading result; this surface is operator-side, so hidden-test
// counts are not redacted here.
func (s *GraderService) buildGradeHandler() echo.HandlerFunc {
	solutionPath := s.cfg.Paths.SolutionFile
	gradingCfg := s.cfg.GradingConfig()

	return func(c echo.Context) error {
		fh, err := c.FormFile("submission")
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "must supply a submission file")
		}
		src, err := fh.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		defer src.Close()

		// Load and comparison failures come back as a zero-score
		// result, not an HTTP error.
		result := autograde.GradeReader(src, solutionPath, gradingCfg)
		return c.JSON(http.StatusOK, result)
	}
}

// Start runs the service in the background.
func (s *GraderService) Start() {
	address := fmt.Sprintf("%s:%d", s.serviceHost, s.servicePort)
	go func(addr string) {
		if err := s.e.Start(addr); err != nil {
			s.e.Logger.Info("error starting server: ", err, ", shutting down...")
			// attempt clean shutdown by raising sig int
			p, _ := os.FindProcess(os.Getpid())
			p.Signal(os.Interrupt)
		}
	}(address)
}

// Shutdown stops the server gracefully.
func (s *GraderService) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.e.Shutdown(ctx); err != nil {
		s.e.Logger.Error(err)
	}
}

// PrintConfig writes the effective instance configuration to stdout.
func (s *GraderService) PrintConfig() {
	fmt.Println()
	fmt.Println("\tGrading Service Configuration")
	fmt.Println("\t-----------------------------")
	fmt.Println("\tservice name:\t", s.serviceName)
	fmt.Println("\tservice ID:\t", s.serviceID)
	fmt.Println("\tservice host:\t", s.serviceHost)
	fmt.Println("\tservice port:\t", s.servicePort)
	fmt.Println("\tanswer key:\t", s.cfg.Paths.SolutionFile)
	fmt.Println("\tstudent sheet:\t", s.cfg.Assignment.StudentSheet)
	fmt.Println("\tsolution sheet:\t", s.cfg.Assignment.SolutionSheet)
}
