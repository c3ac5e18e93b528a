package tagdoc

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess        = 0  // Catalog built and rendered successfully
	ExitGeneralError   = 1  // Unknown or unclassified error
	ExitUsageError     = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic          = 3  // Internal panic (unexpected crash)
	ExitConfigError    = 10 // Invalid configuration or parameters
	ExitDiscoveryError = 11 // Definition source failed to enumerate a namespace
	ExitMalformedLink  = 12 // A definition declared an unparseable documentation link
	ExitRenderFailed   = 13 // Documentation renderer failed
)

const (
	// DefaultNamespace is the namespace scanned when no namespace is
	// given explicitly. The built-in tag definitions register under it.
	DefaultNamespace = "osm"

	// TestArtifactMarker flags test-only definitions by substring of
	// their fully-qualified name. Definitions matching it never reach
	// documentation output, even when test fixtures end up registered
	// alongside the real tag universe.
	TestArtifactMarker = "TestCase"
)
