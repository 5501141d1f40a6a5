package houston

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	report, err := validator.Validate(ctx, config)
//	if errors.Is(err, houston.ErrApprovalDenied) {
//	    // amendments were not written
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrControlNotFound indicates the control document does not exist.
	ErrControlNotFound = errors.New("control document not found")

	// ErrApprovalDenied indicates the user denied writing amendments.
	ErrApprovalDenied = errors.New("approval denied")

	// ErrValidationFailed indicates at least one check reported an error.
	ErrValidationFailed = errors.New("validation failed")

	// ErrParseFailed indicates a control document could not be parsed.
	ErrParseFailed = errors.New("parse failed")
)

// usageErrorPatterns are fragments of cobra/pflag messages for command line misuse.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrApprovalDenied):
		return ExitApprovalDenied
	case errors.Is(err, ErrValidationFailed):
		return ExitValidationFailed
	case errors.Is(err, ErrControlNotFound):
		return ExitControlMissing
	case errors.Is(err, ErrParseFailed):
		return ExitParseError
	}

	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
