// Package loader turns raw input lines into a domain.Plan.
//
// It runs the diagram parser over the head of the input and the move parser
// over everything after the separator line, so a Plan is only returned when
// the whole input is well formed.
package loader
