// Command gocommons is the command line front end of the gocommons library.
//
// gocommons bundles the everyday helpers of the library packages: recursive
// listing and counting, duplicate detection, ownership and mode changes,
// archive creation and extraction, and timestamp formatting.
//
// The main binary supports multiple subcommands:
//   - list: list files under a root, filtered by extension, substring or glob
//   - count: count files in directory trees
//   - dupes: report files with identical content
//   - perm: apply owner, group and mode through chown and chmod
//   - archive: create, extract, list, verify and gunzip archives
//   - time: print the current time, parse durations, check timestamps
//   - seed: generate a sample tree
package main
