// Package config loads prettylog display configuration.
//
// It supplies defaults, reads an optional TOML file, and honours the
// conventional environment overrides (PRETTYLOG_VERBOSE, NO_COLOR, NO_EMOJI,
// NO_TIME, LOG_FILE). Configuration is resolved once at start-up and passed
// into the formatting core by value; nothing in the formatting path reads
// environment state directly.
package config
