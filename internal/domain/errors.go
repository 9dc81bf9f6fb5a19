package domain

import "errors"

// Error kinds reported by parsing and simulation. Callers match them with
// errors.Is; the returned errors wrap them with line or lane context.
var (
	// ErrLaneHeader is returned when the lane header does not number exactly
	// 1..n for the n stacks found in the diagram.
	ErrLaneHeader = errors.New("lane header does not match diagram")

	// ErrMissingSeparator is returned when the line after the lane header is
	// not empty.
	ErrMissingSeparator = errors.New("expected empty line after lane header")

	// ErrTruncatedInput is returned when input ends before the lane header or
	// separator line.
	ErrTruncatedInput = errors.New("unexpected end of input")

	// ErrMalformedMove is returned for a line not of the form
	// "move N from S to D".
	ErrMalformedMove = errors.New("malformed move")

	// ErrUnknownLane is returned when a move names a lane outside 1..n.
	ErrUnknownLane = errors.New("unknown lane")

	// ErrCapacity is returned when a move asks for more crates than the source
	// lane holds.
	ErrCapacity = errors.New("too many crates to move")

	// ErrEmptyStack is returned when a lane has no crate at read-out.
	ErrEmptyStack = errors.New("empty stack")
)
