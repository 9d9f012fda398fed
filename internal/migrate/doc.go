// Package migrate runs the two conversions: a Claude plugin tree into an
// OpenCode config directory ([Plugin]) and a Claude config directory into an
// OpenCode project directory ([Config]).
//
// Both are synchronous and single-pass. Files already written stay in place
// when a later step fails.
package migrate
