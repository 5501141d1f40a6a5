// Package files groups the file handling used by houston.
//
//   - filesystem: filesystem abstraction with OS and in-memory implementations
//   - scanner: discovery of control documents in a workspace
//
// # Usage
//
//	import (
//	    "github.com/rupertdev/houston/internal/checksum"
//	    "github.com/rupertdev/houston/internal/files/scanner"
//	)
//
//	s := scanner.NewScanner(checksum.New())
//	result, err := s.ScanWorkspace(".")
package files
