// Package scanner discovers control documents in a workspace.
//
// A file is a control document when it is named "control" inside a "debian"
// directory, or when its name ends in ".control". Hidden directories are
// skipped. For each document the scanner records path, size, modification
// time, raw and normalized checksums, and the Source and Package fields. A
// document that fails to parse is still reported with its ParseError set.
//
// The scanner works through filesystem.FileSystemProvider so tests can run
// against the in-memory filesystem.
package scanner
