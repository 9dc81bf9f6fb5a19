// Package input reads the puzzle text into memory as lines.
//
// The whole input is materialised before parsing starts. Lines are split on
// "\n" with a trailing "\r" dropped, and a final line without a terminator is
// kept.
package input
