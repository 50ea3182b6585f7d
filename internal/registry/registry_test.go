package registry_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"prettylog/internal/pretty"
	"prettylog/internal/registry"
)

func encodeAll(string) bool { return true }

func TestSetupIdempotent(t *testing.T) {
	reg := registry.New()
	defer reg.Close() //nolint:errcheck

	var console bytes.Buffer
	logPath := filepath.Join(t.TempDir(), "app.log")
	opts := registry.Options{
		Console:       pretty.Config{},
		ConsoleWriter: &console,
		ConsoleProbe:  encodeAll,
		LogFile:       logPath,
	}

	first, err := reg.Setup("app", opts)
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	second, err := reg.Setup("app", opts)
	if err != nil {
		t.Fatalf("second Setup returned error: %v", err)
	}
	if first != second {
		t.Fatal("Setup must reuse the existing logger instance")
	}

	second.Info("exactly once")

	if n := strings.Count(console.String(), "exactly once"); n != 1 {
		t.Fatalf("console received %d copies, want 1", n)
	}
	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if n := strings.Count(string(content), "exactly once"); n != 1 {
		t.Fatalf("file received %d copies, want 1", n)
	}
}

func TestFileDestinationAlwaysPlain(t *testing.T) {
	reg := registry.New()
	defer reg.Close() //nolint:errcheck

	var console bytes.Buffer
	logPath := filepath.Join(t.TempDir(), "plain.log")
	log, err := reg.Setup("app", registry.Options{
		Console:       pretty.Config{UseColor: true, UseEmoji: true},
		ConsoleWriter: &console,
		ConsoleProbe:  encodeAll,
		LogFile:       logPath,
	})
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}

	log.Success("Process completed")

	if !strings.Contains(console.String(), "\033[") {
		t.Fatalf("expected colored console output, got %q", console.String())
	}
	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := string(content)
	if strings.Contains(line, "\033[") {
		t.Fatalf("file output must not contain escapes: %q", line)
	}
	if strings.Contains(line, "🎉") {
		t.Fatalf("file output must not contain glyphs: %q", line)
	}
	if !strings.Contains(line, "SUCCESS Process completed") {
		t.Fatalf("unexpected file line %q", line)
	}
}

func TestSetupUpdatesFormatterInPlace(t *testing.T) {
	reg := registry.New()

	var console bytes.Buffer
	base := registry.Options{
		Console:       pretty.Config{UseEmoji: true},
		ConsoleWriter: &console,
		ConsoleProbe:  encodeAll,
	}
	log, err := reg.Setup("app", base)
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	log.Success("with glyph")
	if !strings.Contains(console.String(), "🎉") {
		t.Fatalf("expected glyph in %q", console.String())
	}

	console.Reset()
	base.Console = pretty.Config{}
	if _, err := reg.Setup("app", base); err != nil {
		t.Fatalf("second Setup returned error: %v", err)
	}
	log.Success("without glyph")
	out := console.String()
	if strings.Contains(out, "🎉") {
		t.Fatalf("formatter not updated in place: %q", out)
	}
	if n := strings.Count(out, "without glyph"); n != 1 {
		t.Fatalf("expected single console handler, got %d lines", n)
	}
}

func TestVerboseSelectsDebugFloor(t *testing.T) {
	reg := registry.New()

	var console bytes.Buffer
	log, err := reg.Setup("app", registry.Options{
		ConsoleWriter: &console,
		ConsoleProbe:  encodeAll,
	})
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	log.Debug("hidden")
	if console.Len() != 0 {
		t.Fatalf("debug must be suppressed at info floor, got %q", console.String())
	}

	if _, err := reg.Setup("app", registry.Options{
		Verbose:       true,
		ConsoleWriter: &console,
		ConsoleProbe:  encodeAll,
	}); err != nil {
		t.Fatalf("second Setup returned error: %v", err)
	}
	log.Debug("Debug message")
	if got := strings.TrimSuffix(console.String(), "\n"); got != "DEBUG Debug message" {
		t.Fatalf("console line = %q, want %q", got, "DEBUG Debug message")
	}
}

func TestErrAttrBecomesTrace(t *testing.T) {
	reg := registry.New()

	var console bytes.Buffer
	log, err := reg.Setup("app", registry.Options{
		ConsoleWriter: &console,
		ConsoleProbe:  encodeAll,
	})
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}

	log.Error("request failed", registry.Err(errors.New("connection reset")))
	got := strings.TrimSuffix(console.String(), "\n")
	if got != "ERROR request failed\nconnection reset" {
		t.Fatalf("console line = %q", got)
	}
}

func TestAttrsRenderAsKeyValueSuffix(t *testing.T) {
	reg := registry.New()

	var console bytes.Buffer
	log, err := reg.Setup("app", registry.Options{
		ConsoleWriter: &console,
		ConsoleProbe:  encodeAll,
	})
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}

	log.Info("starting", "port", 8080, "env", "prod")
	got := strings.TrimSuffix(console.String(), "\n")
	if got != "INFO starting port=8080 env=prod" {
		t.Fatalf("console line = %q", got)
	}
}

func TestChangedLogFileReplacesDestination(t *testing.T) {
	reg := registry.New()
	defer reg.Close() //nolint:errcheck

	dir := t.TempDir()
	firstPath := filepath.Join(dir, "first.log")
	secondPath := filepath.Join(dir, "second.log")

	var console bytes.Buffer
	opts := registry.Options{
		ConsoleWriter: &console,
		ConsoleProbe:  encodeAll,
		LogFile:       firstPath,
	}
	log, err := reg.Setup("app", opts)
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	log.Info("to first")

	opts.LogFile = secondPath
	if _, err := reg.Setup("app", opts); err != nil {
		t.Fatalf("second Setup returned error: %v", err)
	}
	log.Info("to second")

	firstContent, err := os.ReadFile(firstPath)
	if err != nil {
		t.Fatalf("read first log: %v", err)
	}
	if strings.Contains(string(firstContent), "to second") {
		t.Fatal("replaced destination still received output")
	}
	secondContent, err := os.ReadFile(secondPath)
	if err != nil {
		t.Fatalf("read second log: %v", err)
	}
	if n := strings.Count(string(secondContent), "to second"); n != 1 {
		t.Fatalf("expected exactly one file line, got %d", n)
	}
}

func TestSilence(t *testing.T) {
	reg := registry.New()

	var console bytes.Buffer
	log, err := reg.Setup("chatty", registry.Options{
		ConsoleWriter: &console,
		ConsoleProbe:  encodeAll,
	})
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}

	reg.Silence("chatty")
	log.Critical("still here?")
	if console.Len() != 0 {
		t.Fatalf("silenced logger emitted %q", console.String())
	}
}

func TestConcurrentLogging(t *testing.T) {
	reg := registry.New()

	var console lockedBuffer
	log, err := reg.Setup("app", registry.Options{
		Verbose:       true,
		ConsoleWriter: &console,
		ConsoleProbe:  encodeAll,
	})
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}

	const workers = 8
	const each = 25
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < each; i++ {
				log.Info("concurrent line")
			}
		}()
	}
	wg.Wait()

	lines := strings.Count(console.String(), "\n")
	if lines != workers*each {
		t.Fatalf("expected %d lines, got %d", workers*each, lines)
	}
}

// lockedBuffer guards against overlapping writes from handler clones.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
