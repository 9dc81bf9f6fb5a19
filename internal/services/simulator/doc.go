// Package simulator applies moves to a stack set.
//
// A move lifts the top Count crates off the source lane and sets them down on
// the destination one at a time, so the lifted block lands in reverse order:
// the crate that was on top of the source ends up lowest in the block.
//
// Lanes and capacity are checked before anything is touched, so a failed move
// leaves every stack as it was. Moves before the failing one stay applied.
package simulator
