// Package checks holds the single-purpose checks run against a control
// document.
//
// Each check compares one field with what the workspace expects. When the
// right value is known, the check amends the field in place and reports a
// warning ("Missing "X" field" or ""X" field should be "Y""). When no
// automatic fix exists it reports an error. Checks never perform I/O; the
// services.Validator reads the document, runs the checks, and decides whether
// to write amendments back.
package checks
