package tagdoc

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	cat, err := catalog.New(source)
//	if errors.Is(err, tagdoc.ErrMalformedLink) {
//	    // A definition declared a broken documentation link
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDiscovery indicates the definition source failed to enumerate
	// candidates for a namespace. Construction aborts; there is no
	// partial catalog.
	ErrDiscovery = errors.New("definition discovery failed")

	// ErrMalformedLink indicates a definition declared a non-empty
	// documentation link that does not parse as a URI. Fatal for the
	// whole catalog so broken links are never published silently.
	ErrMalformedLink = errors.New("malformed documentation link")

	// ErrRenderFailed indicates a documentation renderer failed.
	ErrRenderFailed = errors.New("render failed")
)

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
	case errors.Is(err, ErrDiscovery):
		return ExitDiscoveryError
	case errors.Is(err, ErrMalformedLink):
		return ExitMalformedLink
	case errors.Is(err, ErrRenderFailed):
		return ExitRenderFailed
	}

	// Cobra reports flag and argument misuse as plain errors; map the
	// common message shapes onto the usage exit code.
	errStr := err.Error()
	if strings.Contains(errStr, "unknown flag") ||
		strings.Contains(errStr, "unknown shorthand flag") ||
		strings.Contains(errStr, "unknown command") ||
		strings.Contains(errStr, "invalid argument") ||
		strings.Contains(errStr, "required flag") ||
		strings.Contains(errStr, "arg(s), received") {
		return ExitUsageError
	}

	return ExitGeneralError
}
