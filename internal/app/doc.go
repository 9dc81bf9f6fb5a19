// Package app wires application dependencies for the CLI.
//
// It builds the logger and services from Config, exposes them via the Wire
// struct, and runs the load, simulate and read-out pipeline through App.
package app
