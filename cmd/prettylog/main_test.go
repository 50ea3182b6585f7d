package main

import (
	"strings"
	"testing"
)

func TestRenderStyleTablePlain(t *testing.T) {
	out := renderStyleTable(false)
	for _, label := range []string{"DEBUG", "INFO", "SUCCESS", "WARNING", "ERROR", "CRITICAL"} {
		if !strings.Contains(out, label) {
			t.Fatalf("style table missing %s:\n%s", label, out)
		}
	}
	if !strings.Contains(out, "The quick brown fox") {
		t.Fatalf("style table missing sample column:\n%s", out)
	}
	if strings.Contains(out, "\033[") {
		t.Fatalf("undecorated table must not contain escapes:\n%s", out)
	}
}

func TestRootCommandWiring(t *testing.T) {
	root := newRootCommand()
	for _, name := range []string{"demo", "styles", "config"} {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("missing subcommand %q", name)
		}
	}
}
