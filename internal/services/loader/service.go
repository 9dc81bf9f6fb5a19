package loader

import (
	"github.com/go-logr/logr"

	"cratemover/internal/domain"
	"cratemover/internal/protocol/layout"
	"cratemover/internal/protocol/move"
)

// Service parses input lines into starting stacks and moves.
type Service struct {
	log logr.Logger
}

// New returns a loader that reports progress to log.
func New(log logr.Logger) *Service { return &Service{log: log.WithName("loader")} }

// Load parses the diagram, lane header, separator and moves in lines.
func (s *Service) Load(lines []string) (domain.Plan, error) {
	stacks, rest, err := layout.Parse(lines)
	if err != nil {
		return domain.Plan{}, err
	}
	s.log.V(1).Info("parsed diagram", "lanes", stacks.Len(), "crates", stacks.Total())

	// rest starts right after the separator line.
	moves, err := move.ParseAll(rest, len(lines)-len(rest)+1)
	if err != nil {
		return domain.Plan{}, err
	}
	s.log.V(1).Info("parsed moves", "moves", len(moves))

	return domain.Plan{Stacks: stacks, Moves: moves}, nil
}

// Compile-time assertion that Service implements domain.PlanLoader.
var _ domain.PlanLoader = (*Service)(nil)
