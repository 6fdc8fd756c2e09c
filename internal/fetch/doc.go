// Package fetch retrieves raw bytes for listing page URLs, optionally
// memoizing responses by URL in a durable SQLite store.
//
// The cache exists purely as a development convenience: iterating on the
// field extractor against a real listing page should not hammer the
// source site. Entries are keyed by URL, never expired, and never
// deleted. The backing store is opened and closed per access so it can
// be inspected with external tools between runs without lock contention.
package fetch
