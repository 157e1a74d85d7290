package cli

// Exit codes for the reqt CLI. Usage guidance and a declined overwrite are
// not failures and exit with ExitSuccess.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates the command failed; the error was printed to stderr
	ExitFailure = 1
)
