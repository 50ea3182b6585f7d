package registry

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"prettylog/internal/pretty"
	"prettylog/internal/severity"
	"prettylog/internal/term"
)

// Options describes one Setup call for a named logger.
type Options struct {
	// Verbose selects the Debug floor instead of Info.
	Verbose bool

	// Console holds the display preferences for the console destination.
	Console pretty.Config

	// ConsoleWriter overrides the destination stream; defaults to a
	// platform-safe stdout writer. Mainly for tests.
	ConsoleWriter io.Writer

	// ConsoleProbe overrides the console encoding-capability check;
	// defaults to the process locale probe.
	ConsoleProbe func(string) bool

	// LogFile names an optional secondary plain-text destination. The file
	// destination never colors or emoji-decorates its output.
	LogFile string
}

// Registry owns the named loggers of a process.
type Registry struct {
	mu      sync.Mutex
	loggers map[string]*Logger
}

// New returns an empty registry. Applications construct one at start-up and
// pass it by reference.
func New() *Registry {
	return &Registry{loggers: make(map[string]*Logger)}
}

// Setup creates or reconfigures the named logger. Calling Setup twice with
// the same name updates the existing destinations' level and formatter in
// place; it never attaches duplicate handlers. A changed LogFile path
// replaces the previous file destination.
func (r *Registry) Setup(name string, opts Options) (*Logger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lg, ok := r.loggers[name]
	if !ok {
		lg = &Logger{name: name, level: new(slog.LevelVar)}
		lg.rebuild()
		r.loggers[name] = lg
	}

	level := severity.Info
	if opts.Verbose {
		level = severity.Debug
	}
	lg.level.Set(level)

	probe := opts.ConsoleProbe
	if probe == nil {
		probe = term.Probe()
	}
	consoleFormatter := pretty.NewFormatter(opts.Console, probe)
	if lg.console == nil {
		writer := opts.ConsoleWriter
		if writer == nil {
			writer = term.ConsoleWriter(os.Stdout)
		}
		lg.console = newDestination(writer, lg.level, consoleFormatter)
	} else {
		lg.console.setFormatter(consoleFormatter)
		if opts.ConsoleWriter != nil {
			lg.console.setWriter(opts.ConsoleWriter)
		}
	}

	if opts.LogFile != "" {
		if err := r.setupFile(lg, opts); err != nil {
			return nil, err
		}
	}

	lg.rebuild()
	return lg, nil
}

func (r *Registry) setupFile(lg *Logger, opts Options) error {
	path, err := filepath.Abs(opts.LogFile)
	if err != nil {
		path = opts.LogFile
	}

	// Files stay plain text: no color, no emoji, UTF-8 always encodable.
	formatter := pretty.NewFormatter(pretty.Config{ShowTime: opts.Console.ShowTime}, nil)

	if lg.file != nil && lg.filePath == path {
		lg.file.setFormatter(formatter)
		return nil
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ensure log directory: %w", err)
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
	if err != nil {
		return fmt.Errorf("open log file %s: %w", path, err)
	}

	if lg.fileOut != nil {
		lg.fileOut.Close() //nolint:errcheck // superseded destination
	}
	lg.file = newDestination(file, lg.level, formatter)
	lg.filePath = path
	lg.fileOut = file
	return nil
}

// Get returns the named logger if Setup created it.
func (r *Registry) Get(name string) (*Logger, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lg, ok := r.loggers[name]
	return lg, ok
}

// Silence raises the named loggers above Critical so they emit nothing.
// Names without an existing logger get a silenced placeholder, covering noisy
// third-party components configured before their first log call.
func (r *Registry) Silence(names ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, name := range names {
		lg, ok := r.loggers[name]
		if !ok {
			lg = &Logger{name: name, level: new(slog.LevelVar)}
			lg.rebuild()
			r.loggers[name] = lg
		}
		lg.level.Set(severity.Critical + 1)
	}
}

// Close releases every file destination.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var errs []error
	for _, lg := range r.loggers {
		if lg.fileOut != nil {
			if err := lg.fileOut.Close(); err != nil {
				errs = append(errs, err)
			}
			lg.fileOut = nil
		}
	}
	return errors.Join(errs...)
}
