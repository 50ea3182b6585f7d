// Package registry owns named logger instances and their console and file
// destinations.
//
// The formatting core (internal/pretty) stays pure; this package supplies the
// mutable, process-facing side: handler lifecycle, destination selection, and
// the registry map itself. Setup is idempotent per logger name - repeated
// calls update the existing destinations' level and formatter in place instead
// of attaching duplicates. Console destinations honor the application's
// display preferences; file destinations always write plain UTF-8 text with
// color and emoji forced off.
//
// Loggers are created explicitly through a Registry constructed at
// application start-up. There is no load-time default instance.
package registry
