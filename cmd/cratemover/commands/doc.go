// Package commands defines the cratemover CLI and wires dependencies for subcommands.
//
// Commands
//
//   - run          Apply the moves and print the top crate of every lane
//   - stacks       Print the parsed (or final, with --after) stacks as YAML or JSON
//   - fingerprint  Print a short digest of the final arrangement
//
// Running cratemover without a subcommand behaves like run.
//
// # Configuration
//
// Flags may also be set through CRATEMOVER_* environment variables (dashes
// become underscores) or a cratemover.yaml file in the working directory or
// $HOME/.config/cratemover. Explicit flags win over the environment, which
// wins over the file.
package commands
