package app

import (
	"io"

	"github.com/go-logr/logr"

	"cratemover/internal/crypto"
	"cratemover/internal/domain"
	"cratemover/internal/logging"
	"cratemover/internal/services/loader"
	"cratemover/internal/services/simulator"
)

// Wire bundles the services and logger for the CLI.
type Wire struct {
	Loader       domain.PlanLoader
	Simulator    domain.Simulator
	Fingerprints domain.Fingerprinter
	Log          logr.Logger
}

// NewWire constructs the dependency graph from cfg. Logs are written to logOut.
func NewWire(cfg Config, logOut io.Writer) (*Wire, error) {
	log, err := logging.New(cfg.LogLevel, logOut)
	if err != nil {
		return nil, err
	}
	return &Wire{
		Loader:       loader.New(log),
		Simulator:    simulator.New(log),
		Fingerprints: crypto.Stacks{},
		Log:          log,
	}, nil
}
