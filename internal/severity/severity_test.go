package severity_test

import (
	"log/slog"
	"testing"

	"prettylog/internal/ansi"
	"prettylog/internal/severity"
)

func TestLevelOrdering(t *testing.T) {
	levels := append([]slog.Level{severity.Trace}, severity.Levels()...)
	for i := 1; i < len(levels); i++ {
		if levels[i-1] >= levels[i] {
			t.Fatalf("levels out of order: %v >= %v", levels[i-1], levels[i])
		}
	}
	if !(severity.Info < severity.Success && severity.Success < severity.Warning) {
		t.Fatal("SUCCESS must sit between INFO and WARNING")
	}
}

func TestStyleForKnownLevels(t *testing.T) {
	cases := []struct {
		level slog.Level
		label string
		color ansi.Style
		emoji string
	}{
		{severity.Debug, "DEBUG", ansi.Cyan, "🐛"},
		{severity.Info, "INFO", ansi.Blue, "📘"},
		{severity.Success, "SUCCESS", ansi.Green, "🎉"},
		{severity.Warning, "WARNING", ansi.Yellow, "🚧"},
		{severity.Error, "ERROR", ansi.Red, "🐞"},
		{severity.Critical, "CRITICAL", ansi.Magenta, "💀"},
	}
	for _, tc := range cases {
		st := severity.StyleFor(tc.level)
		if st.Label != tc.label || st.Color != tc.color || st.Emoji != tc.emoji {
			t.Fatalf("StyleFor(%v) = %+v, want {%s %s %s}", tc.level, st, tc.label, tc.color, tc.emoji)
		}
	}
}

func TestStyleForUnknownLevelSynthesizes(t *testing.T) {
	st := severity.StyleFor(slog.Level(1))
	if st.Label != "INFO+1" {
		t.Fatalf("unexpected label %q", st.Label)
	}
	if st.Color != "" || st.Emoji != "" {
		t.Fatalf("unknown level must have no color or emoji, got %+v", st)
	}
}

func TestStyleForTraceHasNoDecoration(t *testing.T) {
	st := severity.StyleFor(severity.Trace)
	if st.Label != "TRACE" {
		t.Fatalf("unexpected label %q", st.Label)
	}
	if st.Color != "" || st.Emoji != "" {
		t.Fatalf("trace must render undecorated, got %+v", st)
	}
}

func TestParse(t *testing.T) {
	cases := map[string]slog.Level{
		"trace":    severity.Trace,
		"debug":    severity.Debug,
		"INFO":     severity.Info,
		"success":  severity.Success,
		"warn":     severity.Warning,
		"warning":  severity.Warning,
		"error":    severity.Error,
		"critical": severity.Critical,
		"fatal":    severity.Critical,
		"":         severity.Info,
		"bogus":    severity.Info,
	}
	for name, want := range cases {
		if got := severity.Parse(name); got != want {
			t.Fatalf("Parse(%q) = %v, want %v", name, got, want)
		}
	}
}
