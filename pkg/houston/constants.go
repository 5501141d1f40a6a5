package houston

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // Command completed successfully
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration or parameters
	ExitApprovalDenied   = 12 // User denied writing amendments
	ExitValidationFailed = 13 // A check reported an error
	ExitControlMissing   = 14 // Control document not found
	ExitParseError       = 15 // Control document is malformed
)

const (
	// DefaultControlPath is where a Debian source package keeps its control file.
	DefaultControlPath = "debian/control"

	// DefaultArchitecture is used when a binary package declares none.
	DefaultArchitecture = "any"

	// ConfigFileName is the project configuration file looked up in the workspace root.
	ConfigFileName = "houston.yaml"

	// ControlFileExtension marks standalone control documents found by the scanner.
	ControlFileExtension = ".control"

	// MaxSummaryLength is the longest synopsis line accepted without a warning.
	MaxSummaryLength = 80

	// EnvPrefix prefixes every environment variable houston reads.
	EnvPrefix = "HOUSTON_"
)
