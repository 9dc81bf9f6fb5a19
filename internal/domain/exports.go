package domain

import (
	interfaces "cratemover/internal/domain/interfaces"
	types "cratemover/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Crate       = types.Crate
	Lane        = types.Lane
	Fingerprint = types.Fingerprint
	Stack       = types.Stack
	StackSet    = types.StackSet
	Move        = types.Move
	Plan        = types.Plan
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	PlanLoader    = interfaces.PlanLoader
	Simulator     = interfaces.Simulator
	Fingerprinter = interfaces.Fingerprinter
)

// NewStack returns a stack holding crates, listed bottom to top.
func NewStack(crates ...Crate) Stack { return types.NewStack(crates...) }

// NewStackSet returns a set whose lanes hold the given stacks in order.
func NewStackSet(stacks ...Stack) *StackSet { return types.NewStackSet(stacks...) }
