// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (stacks, moves, plans), the error kinds reported by
// parsing and simulation, and contracts (interfaces) only.
package domain
