// Package ansi wraps text in ANSI terminal style codes and strips them back
// out. The supported style set and the CSI matching pattern are fixed; callers
// requesting a style outside the set get an UnknownStyleError.
package ansi

import (
	"fmt"
	"regexp"
	"strings"
)

// Style names a supported ANSI color or text attribute.
type Style string

const (
	Black   Style = "black"
	Red     Style = "red"
	Green   Style = "green"
	Yellow  Style = "yellow"
	Blue    Style = "blue"
	Magenta Style = "magenta"
	Cyan    Style = "cyan"
	White   Style = "white"

	BrightBlack   Style = "bright_black"
	BrightRed     Style = "bright_red"
	BrightGreen   Style = "bright_green"
	BrightYellow  Style = "bright_yellow"
	BrightBlue    Style = "bright_blue"
	BrightMagenta Style = "bright_magenta"
	BrightCyan    Style = "bright_cyan"
	BrightWhite   Style = "bright_white"

	End       Style = "end"
	Bold      Style = "bold"
	Underline Style = "underline"
)

var codes = map[Style]string{
	Black:   "\033[30m",
	Red:     "\033[31m",
	Green:   "\033[32m",
	Yellow:  "\033[33m",
	Blue:    "\033[34m",
	Magenta: "\033[35m",
	Cyan:    "\033[36m",
	White:   "\033[37m",

	BrightBlack:   "\033[90m",
	BrightRed:     "\033[91m",
	BrightGreen:   "\033[92m",
	BrightYellow:  "\033[93m",
	BrightBlue:    "\033[94m",
	BrightMagenta: "\033[95m",
	BrightCyan:    "\033[96m",
	BrightWhite:   "\033[97m",

	End:       "\033[0m",
	Bold:      "\033[1m",
	Underline: "\033[4m",
}

// csiPattern matches Control-Sequence-Introducer escapes: ESC [ followed by
// parameter bytes, intermediate bytes, and one final letter.
var csiPattern = regexp.MustCompile(`\x1B\[[0-?]*[ -/]*[@-~]`)

// UnknownStyleError reports a style name outside the supported set. It marks
// a caller bug rather than an input-validation failure.
type UnknownStyleError struct {
	Name Style
}

func (e *UnknownStyleError) Error() string {
	return fmt.Sprintf("ansi: unknown style %q", string(e.Name))
}

// Decorate wraps text in the escape codes for the given styles, applied in
// order, terminated by a single reset code.
func Decorate(text string, styles ...Style) (string, error) {
	var b strings.Builder
	b.Grow(len(text) + (len(styles)+1)*5)
	for _, style := range styles {
		code, ok := codes[style]
		if !ok {
			return "", &UnknownStyleError{Name: style}
		}
		b.WriteString(code)
	}
	b.WriteString(text)
	b.WriteString(codes[End])
	return b.String(), nil
}

// Strip removes every CSI escape sequence from s, leaving all other bytes
// untouched. Strip is idempotent.
func Strip(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}
	return csiPattern.ReplaceAllString(s, "")
}
