// Package term answers what an output destination is capable of: whether it
// is an interactive terminal, how to write colored output to it safely, and
// whether its character encoding can represent a given string.
package term

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/encoding/ianaindex"
)

// IsTerminal reports whether f is attached to an interactive terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ConsoleWriter returns a writer for f that renders ANSI escapes correctly,
// including on legacy Windows consoles.
func ConsoleWriter(f *os.File) io.Writer {
	if f == nil {
		return io.Discard
	}
	return colorable.NewColorable(f)
}

// Probe returns the encoding-capability check for the process's terminal
// encoding, derived from the locale environment. The probe reports whether a
// string can be represented in that encoding without corruption. A charset
// that cannot be resolved makes the probe reject everything; an unset or
// UTF-8 locale accepts everything.
func Probe() func(string) bool {
	return localeProbe()
}

var localeProbe = sync.OnceValue(func() func(string) bool {
	return ProbeFor(localeCharset())
})

// ProbeFor builds an encoding-capability check for the named charset.
func ProbeFor(charset string) func(string) bool {
	charset = strings.ToLower(strings.TrimSpace(charset))
	switch charset {
	case "", "utf-8", "utf8":
		return func(string) bool { return true }
	}
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil || enc == nil {
		return func(string) bool { return false }
	}
	return func(s string) bool {
		_, err := enc.NewEncoder().String(s)
		return err == nil
	}
}

// localeCharset extracts the charset name from the locale environment,
// honoring the usual LC_ALL > LC_CTYPE > LANG precedence.
func localeCharset() string {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		value := strings.TrimSpace(os.Getenv(key))
		if value == "" {
			continue
		}
		if modifier := strings.IndexByte(value, '@'); modifier >= 0 {
			value = value[:modifier]
		}
		switch value {
		case "C", "POSIX":
			return "us-ascii"
		}
		if dot := strings.IndexByte(value, '.'); dot >= 0 {
			return value[dot+1:]
		}
		return ""
	}
	return ""
}
