package simulator

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"

	"cratemover/internal/domain"
)

// Service moves crates between the lanes of a domain.StackSet.
type Service struct {
	log logr.Logger
}

// New returns a simulator that reports each move to log at V(1).
func New(log logr.Logger) *Service { return &Service{log: log.WithName("simulator")} }

// Apply performs a single move on set.
func (s *Service) Apply(set *domain.StackSet, m domain.Move) error {
	src, ok := set.Lane(m.Source)
	if !ok {
		return errors.Wrapf(domain.ErrUnknownLane, "%s: source lane %d not in 1..%d", m, m.Source, set.Len())
	}
	dst, ok := set.Lane(m.Destination)
	if !ok {
		return errors.Wrapf(domain.ErrUnknownLane, "%s: destination lane %d not in 1..%d", m, m.Destination, set.Len())
	}
	if uint64(m.Count) > uint64(src.Len()) {
		return errors.Wrapf(domain.ErrCapacity, "%s: lane %d holds %d", m, m.Source, src.Len())
	}

	block := src.Lift(int(m.Count))
	for i := len(block) - 1; i >= 0; i-- {
		dst.Push(block[i])
	}
	return nil
}

// Run applies moves to set in order and stops at the first failure.
func (s *Service) Run(ctx context.Context, set *domain.StackSet, moves []domain.Move) error {
	for i, m := range moves {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Apply(set, m); err != nil {
			return errors.Wrapf(err, "move %d", i+1)
		}
		s.log.V(1).Info("applied move", "index", i+1, "move", m.String())
	}
	s.log.Info("simulation complete", "moves", len(moves), "lanes", set.Len())
	return nil
}

// Tops returns the top crate of every lane, lane 1 first.
func (s *Service) Tops(set *domain.StackSet) ([]domain.Crate, error) {
	tops := make([]domain.Crate, 0, set.Len())
	for l := domain.Lane(1); int(l) <= set.Len(); l++ {
		stack, _ := set.Lane(l)
		top, ok := stack.Top()
		if !ok {
			return nil, errors.Wrapf(domain.ErrEmptyStack, "lane %d", l)
		}
		tops = append(tops, top)
	}
	return tops, nil
}

// Compile-time assertion that Service implements domain.Simulator.
var _ domain.Simulator = (*Service)(nil)
