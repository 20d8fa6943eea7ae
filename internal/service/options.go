package service

import (
	"github.com/ChandlerFarnsworth/xlsx-autograder/internal/config"
	"github.com/ChandlerFarnsworth/xlsx-autograder/internal/util"
)

// Option configures a GraderService.
type Option func(*GraderService) error

// setOptions applies the given options and fills any gaps with
// generated or default values.
func (s *GraderService) setOptions(options ...Option) error {
	for _, opt := range options {
		if err := opt(s); err != nil {
			return err
		}
	}
	return s.fillDefaults()
}

func (s *GraderService) fillDefaults() error {
	if s.serviceName == "" {
		s.serviceName = util.GenerateName()
	}
	if s.serviceID == "" {
		s.serviceID = util.GenerateID()
	}
	if s.serviceHost == "" {
		s.serviceHost = "localhost"
	}
	if s.servicePort == 0 {
		port, err := util.AvailablePort()
		if err != nil {
			return err
		}
		s.servicePort = port
	}
	if s.cfg == nil {
		cfg, err := config.Load("")
		if err != nil {
			return err
		}
		s.cfg = cfg
	}
	return nil
}

// Name sets the instance name; blank auto-generates one.
func Name(name string) Option {
	return func(s *GraderService) error {
		s.serviceName = name
		return nil
	}
}

// ID sets the instance id; blank auto-generates one.
func ID(id string) Option {
	return func(s *GraderService) error {
		s.serviceID = id
		return nil
	}
}

// Host sets the host address to serve on.
func Host(host string) Option {
	return func(s *GraderService) error {
		s.serviceHost = host
		return nil
	}
}

// Port sets the port to serve on; 0 picks an available one.
func Port(port int) Option {
	return func(s *GraderService) error {
		s.servicePort = port
		return nil
	}
}

// Config supplies the deployment configuration.
func Config(cfg *config.AppConfig) Option {
	return func(s *GraderService) error {
		s.cfg = cfg
		return nil
	}
}
