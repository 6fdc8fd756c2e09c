package config

import "errors"

// Configuration errors.
// These errors are returned by Config.Validate() and Load() and provide
// specific information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances at each call site. This allows callers to
// use errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrConfigNotFound is returned when the configuration file does not
	// exist. Run the configure command to create it.
	ErrConfigNotFound = errors.New("configuration file not found: run 'daft2trello configure' first")

	// ErrNoAPIKey is returned when no Trello API key is configured.
	ErrNoAPIKey = errors.New("no Trello API key configured")

	// ErrNoUserToken is returned when no Trello user token is configured.
	ErrNoUserToken = errors.New("no Trello user token configured")

	// ErrNoBoard is returned when no target board is configured.
	ErrNoBoard = errors.New("no Trello board configured")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	// A zero or negative timeout would cause immediate request failures.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")
)
