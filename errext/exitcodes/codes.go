// Package exitcodes contains the process exit codes used by elemx.
package exitcodes

// ExitCode is a process exit code.
type ExitCode uint8

// Exit codes, kept well below 125 so they never clash with shell-reserved
// values.
const (
	ParseFailed      ExitCode = 100 // at least one source has a syntax error
	SourceUnreadable ExitCode = 101 // a source or source map could not be read
	InvalidConfig    ExitCode = 104
	GoPanic          ExitCode = 108
)
