package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ChandlerFarnsworth/xlsx-autograder/internal/config"
	"github.com/ChandlerFarnsworth/xlsx-autograder/internal/service"
)

var (
	serviceName string
	serviceID   string
	serviceHost string
	servicePort int
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local HTTP grading service",
		Long: `serve starts an HTTP service that grades uploaded workbooks against
the configured answer key, for use while authoring assignments.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().StringVar(&serviceName, "name", "", "Service instance name, blank to auto-generate")
	cmd.Flags().StringVar(&serviceID, "id", "", "Service instance id, blank to auto-generate")
	cmd.Flags().StringVar(&serviceHost, "host", "localhost", "Host address for the service")
	cmd.Flags().IntVar(&servicePort, "port", 0, "Port to serve on, 0 picks an available one")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config failed: %w", err)
	}

	srvc, err := service.New(
		service.Name(serviceName),
		service.ID(serviceID),
		service.Host(serviceHost),
		service.Port(servicePort),
		service.Config(cfg),
	)
	if err != nil {
		return fmt.Errorf("cannot create grading service: %w", err)
	}

	srvc.PrintConfig()

	// signal handler for shutdown
	closed := make(chan struct{})
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		<-c
		fmt.Println("\nxlsxgrader shutting down")
		srvc.Shutdown()
		close(closed)
	}()

	srvc.Start()

	// block until shutdown by sig-handler
	<-closed

	return nil
}
