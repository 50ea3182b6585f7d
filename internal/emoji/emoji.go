// Package emoji removes emoji glyphs from log text and substitutes plain
// labels when the output destination cannot encode them.
//
// The glyph ranges and the glyph-to-label mapping are a fixed policy: the
// ranges cover Miscellaneous Symbols and Pictographs (U+1F300–U+1FAFF),
// Miscellaneous Symbols (U+2600–U+27BF), and Regional Indicator Symbols
// (U+1F1E6–U+1F1FF); the mapping covers the six severity glyphs.
package emoji

import "strings"

// labelReplacer maps each severity glyph to its plain-text label.
var labelReplacer = strings.NewReplacer(
	"🐛", "DEBUG",
	"📘", "INFO",
	"🎉", "SUCCESS",
	"🚧", "WARNING",
	"🐞", "ERROR",
	"💀", "CRITICAL",
)

func isGlyph(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1FAFF:
		return true
	case r >= 0x2600 && r <= 0x27BF:
		return true
	case r >= 0x1F1E6 && r <= 0x1F1FF:
		return true
	}
	return false
}

// Strip removes every rune in the glyph ranges from s; all other runes pass
// through unchanged, in order. Strip is idempotent.
func Strip(s string) string {
	if !strings.ContainsFunc(s, isGlyph) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isGlyph(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Fallback returns s unchanged when canEncode accepts it. Otherwise every
// known severity glyph is replaced with its label; glyphs with no label
// mapping stay as-is. A nil or panicking probe counts as "cannot encode";
// Fallback never panics.
func Fallback(s string, canEncode func(string) bool) string {
	if probe(canEncode, s) {
		return s
	}
	return labelReplacer.Replace(s)
}

func probe(canEncode func(string) bool, s string) (ok bool) {
	if canEncode == nil {
		return false
	}
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return canEncode(s)
}
