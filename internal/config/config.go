package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"prettylog/internal/pretty"
)

//go:embed sample_config.toml
var sampleConfig string

// Config collects every display knob the console and file destinations need.
type Config struct {
	// Verbose selects the Debug minimum level instead of Info.
	Verbose bool `toml:"verbose"`

	// NoColor disables ANSI colors on the console.
	NoColor bool `toml:"no_color"`

	// NoEmoji disables emoji glyphs on the console.
	NoEmoji bool `toml:"no_emoji"`

	// NoTime hides timestamps on both destinations.
	NoTime bool `toml:"no_time"`

	// LogFile optionally names a plain-text secondary destination.
	LogFile string `toml:"log_file"`
}

// Default returns the repository defaults.
func Default() Config {
	return Config{Verbose: true}
}

// FromEnv returns the defaults with environment overrides applied.
func FromEnv() Config {
	cfg := Default()
	cfg.ApplyEnv()
	return cfg
}

// ApplyEnv overlays the conventional environment variables onto c. NO_COLOR,
// NO_EMOJI, and NO_TIME disable when set to any non-empty value.
func (c *Config) ApplyEnv() {
	if value, ok := os.LookupEnv("PRETTYLOG_VERBOSE"); ok {
		c.Verbose = strings.EqualFold(strings.TrimSpace(value), "true")
	}
	if os.Getenv("NO_COLOR") != "" {
		c.NoColor = true
	}
	if os.Getenv("NO_EMOJI") != "" {
		c.NoEmoji = true
	}
	if os.Getenv("NO_TIME") != "" {
		c.NoTime = true
	}
	if value := os.Getenv("LOG_FILE"); value != "" && c.LogFile == "" {
		c.LogFile = value
	}
}

// Load reads the TOML file at path onto the defaults, then applies
// environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.ApplyEnv()
	return &cfg, nil
}

// Console derives the console destination's formatter config.
func (c Config) Console() pretty.Config {
	return pretty.Config{
		UseColor: !c.NoColor,
		UseEmoji: !c.NoEmoji,
		ShowTime: !c.NoTime,
	}
}

// CreateSample writes the annotated sample configuration to path. It refuses
// to overwrite an existing file.
func CreateSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ensure config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
