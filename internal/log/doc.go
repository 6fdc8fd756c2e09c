// Package log provides logging with automatic masking of Trello
// credentials, built on top of the standard slog package.
//
// Every Trello API request carries the API key and user token as the
// "key" and "token" parameters, and verbose mode logs request details.
// The SecureHandler masks those attribute values before they reach the
// underlying handler so credentials never end up in logs that may be
// shared or stored.
//
// Usage:
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
package log
