// Package pretty turns a single log record into one decorated, human-readable
// line.
//
// Formatting is a pure function of the record, an immutable Config, and the
// static severity style table: no locks, no I/O, no process-wide state. A
// Formatter may therefore be shared and called concurrently without
// synchronization. Decorations (color, emoji, timestamp) toggle independently,
// and every decorated line strips back to its plain form losslessly.
//
// The formatting path never fails: internal rendering problems degrade to a
// best-effort plain line rather than interrupting the logging call.
package pretty
