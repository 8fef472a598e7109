// Package cmd provides the command-line interface implementation for gocommons.
//
// This package contains all the subcommand implementations for the gocommons
// CLI tool. It uses the Cobra library for command structure and Fang for
// styling.
//
// The package is organized into the following commands:
//   - root: command groups, shared settings and logging
//   - list: recursive listing filtered by extension, substring or glob
//   - count: file counting with an optional early-exit limit
//   - dupes: duplicate detection by content hash
//   - perm: chown/chmod through the shell
//   - archive: create, extract, list, verify and gunzip
//   - time: timestamp and duration helpers
//   - seed: sample tree generation
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. Commands write results to the
// command's output stream and diagnostics to the zap logger built from
// internal/config.
package cmd
