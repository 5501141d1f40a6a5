package houston

// Logger receives progress messages from the validator and the commands.
// Messages go to stderr so stdout stays free for reports. Implementations
// must be safe for concurrent use.
type Logger interface {
	// Verbose is shown only with --verbose: checks run or skipped, paths
	// resolved.
	Verbose(format string, args ...interface{})

	// Info reports outcomes such as written amendments.
	Info(format string, args ...interface{})

	Error(format string, args ...interface{})
}
