package types

import "fmt"

// Move relocates Count crates from the Source lane to the Destination lane.
type Move struct {
	Count       uint `json:"count" yaml:"count"`
	Source      Lane `json:"source" yaml:"source"`
	Destination Lane `json:"destination" yaml:"destination"`
}

// String renders the move in its input form.
func (m Move) String() string {
	return fmt.Sprintf("move %d from %d to %d", m.Count, m.Source, m.Destination)
}

// Plan is a parsed input: the starting stacks and the moves to apply to them.
type Plan struct {
	Stacks *StackSet
	Moves  []Move
}
