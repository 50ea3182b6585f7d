package pretty

import (
	"log/slog"
	"strings"
	"time"

	"prettylog/internal/ansi"
	"prettylog/internal/emoji"
	"prettylog/internal/severity"
)

// Config holds the display preferences for one destination. It is constructed
// once per destination and never mutated afterward; file destinations always
// use UseColor=false, UseEmoji=false.
type Config struct {
	UseColor bool
	UseEmoji bool
	ShowTime bool
}

// Record is one log record to format. It is consumed exactly once and not
// retained.
type Record struct {
	Level   slog.Level
	Message string
	Time    time.Time

	// Trace carries rendered exception/stack text, appended to the message
	// on its own lines when present.
	Trace string
}

// Formatter renders records for a single destination.
type Formatter struct {
	cfg       Config
	canEncode func(string) bool
}

// NewFormatter returns a formatter for the given display preferences.
// canEncode probes whether the destination can represent a string without
// corruption; nil means the destination is fully capable (for example a
// UTF-8 file).
func NewFormatter(cfg Config, canEncode func(string) bool) *Formatter {
	if canEncode == nil {
		canEncode = func(string) bool { return true }
	}
	return &Formatter{cfg: cfg, canEncode: canEncode}
}

// Config returns the formatter's display preferences.
func (f *Formatter) Config() Config {
	return f.cfg
}

// Format renders rec as one line. It never fails: missing parts are omitted,
// decorations degrade to plain text, and glyphs the destination cannot encode
// are substituted with their labels.
func (f *Formatter) Format(rec Record) string {
	msg := rec.Message
	if rec.Trace != "" {
		msg = msg + "\n" + rec.Trace
	}

	style := severity.StyleFor(rec.Level)

	tag := style.Label
	if f.cfg.UseColor && style.Color != "" {
		if colored, err := ansi.Decorate(style.Label, ansi.Bold, style.Color); err == nil {
			tag = colored
		}
	}
	if f.cfg.UseEmoji && style.Emoji != "" {
		tag = tag + " " + style.Emoji
	}

	parts := make([]string, 0, 3)
	if f.cfg.ShowTime {
		ts := formatTimestamp(rec.Time)
		if ts != "" && f.cfg.UseColor && style.Color != "" {
			if colored, err := ansi.Decorate(ts, style.Color, ansi.Bold); err == nil {
				ts = colored
			}
		}
		if ts != "" {
			parts = append(parts, ts)
		}
	}
	if tag != "" {
		parts = append(parts, tag)
	}
	if msg != "" {
		parts = append(parts, msg)
	}

	out := strings.Join(parts, " ")

	// Defensive passes: no escape or glyph survives a disabled decoration
	// even if a part arrived pre-decorated.
	if !f.cfg.UseColor {
		out = ansi.Strip(out)
	}
	if !f.cfg.UseEmoji {
		out = emoji.Strip(out)
	}
	return emoji.Fallback(out, f.canEncode)
}
