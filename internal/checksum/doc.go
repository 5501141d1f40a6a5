// Package checksum provides control document hashing with normalization support.
//
// The package implements a dual checksum strategy:
//
//   - Raw checksum: Hash of the exact file content (detects all changes)
//   - Normalized checksum: Hash after dropping comments and normalizing
//     whitespace (layout-independent content identity)
//
// # Normalization Strategy
//
// Normalization makes checksums resilient to formatting changes:
//  1. Drop "#" comment lines and blank lines
//  2. Collapse whitespace runs inside a line to single spaces
//  3. Trim trailing whitespace; continuation lines keep one leading space
//  4. Join the remaining lines with "\n"
//
// Two control documents that parse to the same fields but differ in list
// alignment or comments therefore share a normalized checksum. The validator
// uses this to tell whether checks amended a document.
//
// # Example Usage
//
//	calculator := checksum.New()
//	rawChecksum := calculator.CalculateRaw(fileContent)
//	normalizedChecksum := calculator.CalculateNormalized(fileContent)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
