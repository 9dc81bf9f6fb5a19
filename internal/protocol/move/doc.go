// Package move parses move instructions of the form
//
//	move 3 from 1 to 2
//
// Words are separated by exactly one space, numbers are unsigned decimal and
// nothing may follow the destination lane. Lane numbers are not checked here;
// they are resolved against the stacks when the move is applied.
package move
