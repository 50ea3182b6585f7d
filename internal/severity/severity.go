// Package severity defines the log levels used across prettylog and the
// static style table that maps each level to its label, color, and glyph.
//
// Levels are plain log/slog levels so standard slog call sites keep working.
// SUCCESS slots between INFO and WARNING; adding further levels needs no
// change to call sites that only know the standard five.
package severity

import (
	"log/slog"
	"strings"

	"prettylog/internal/ansi"
)

const (
	Trace    = slog.Level(-8)
	Debug    = slog.LevelDebug
	Info     = slog.LevelInfo
	Success  = slog.Level(2)
	Warning  = slog.LevelWarn
	Error    = slog.LevelError
	Critical = slog.LevelError + 4
)

// Style describes how a level renders: its exact label, an optional color
// name, and an optional emoji glyph.
type Style struct {
	Label string
	Color ansi.Style
	Emoji string
}

var styles = map[slog.Level]Style{
	Debug:    {Label: "DEBUG", Color: ansi.Cyan, Emoji: "🐛"},
	Info:     {Label: "INFO", Color: ansi.Blue, Emoji: "📘"},
	Success:  {Label: "SUCCESS", Color: ansi.Green, Emoji: "🎉"},
	Warning:  {Label: "WARNING", Color: ansi.Yellow, Emoji: "🚧"},
	Error:    {Label: "ERROR", Color: ansi.Red, Emoji: "🐞"},
	Critical: {Label: "CRITICAL", Color: ansi.Magenta, Emoji: "💀"},
}

// StyleFor returns the style entry for level. Levels without a table entry
// synthesize a plain entry from the raw display name: no color, no emoji.
// StyleFor never fails.
func StyleFor(level slog.Level) Style {
	if st, ok := styles[level]; ok {
		return st
	}
	return Style{Label: Label(level)}
}

// Label returns the exact display label for level, falling back to slog's
// raw representation for unrecognized values.
func Label(level slog.Level) string {
	if st, ok := styles[level]; ok {
		return st.Label
	}
	if level == Trace {
		return "TRACE"
	}
	return level.String()
}

// Levels lists the known levels in ascending order.
func Levels() []slog.Level {
	return []slog.Level{Debug, Info, Success, Warning, Error, Critical}
}

// Parse maps a level name to its slog level. Unknown or empty input maps to
// Info.
func Parse(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return Trace
	case "debug":
		return Debug
	case "success":
		return Success
	case "warn", "warning":
		return Warning
	case "error":
		return Error
	case "critical", "fatal":
		return Critical
	case "info", "":
		return Info
	default:
		return Info
	}
}
