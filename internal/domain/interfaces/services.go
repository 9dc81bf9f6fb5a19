package interfaces

import (
	"context"

	domaintypes "cratemover/internal/domain/types"
)

// PlanLoader turns raw input lines into starting stacks and moves.
type PlanLoader interface {
	Load(lines []string) (domaintypes.Plan, error)
}

// Simulator applies moves to a stack set and reads the result.
type Simulator interface {
	Apply(set *domaintypes.StackSet, move domaintypes.Move) error
	Run(
		ctx context.Context,
		set *domaintypes.StackSet,
		moves []domaintypes.Move,
	) error
	Tops(set *domaintypes.StackSet) ([]domaintypes.Crate, error)
}

// Fingerprinter summarises a stack arrangement as a short digest.
type Fingerprinter interface {
	Fingerprint(set *domaintypes.StackSet) domaintypes.Fingerprint
}
