// Package layout reads the crate diagram at the head of the input.
//
// Diagram
//
//	    [D]
//	[N] [C]
//	[Z] [M] [P]
//	 1   2   3
//
// Every row is read as a run of slots, one per lane: "[X]" holds crate X and
// three spaces hold nothing, each followed by an optional separating space.
// Rows are read top down until the first line that is not made of slots, which
// must be the lane header numbering the lanes 1, 2, 3, ... in order. An empty line separates
// the header from the move list.
//
// # Notes
//
// Reading a row stops at the first text that is not a slot, keeping the slots
// before it. A row counts as part of the diagram if at least one slot holds a
// crate; the first row without one ends the diagram.
package layout
