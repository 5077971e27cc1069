package lane

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/germanamz/tenpin/pkg/scoresheet"
)

// DefaultBowler names the bowler when the config does not.
const DefaultBowler = "Player 1"

// Config is the top-level configuration.
type Config struct {
	Bowler        string                 `yaml:"bowler"`
	PendingScores scoresheet.PendingMode `yaml:"pending_scores"`
	Log           LogConfig              `yaml:"log"`
}

// LogConfig controls where diagnostics go. The terminal belongs to the
// scoresheet, so logs are discarded unless a file is set.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"` // debug, info, warn or error (default info).
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Bowler:        DefaultBowler,
		PendingScores: scoresheet.PendingProvisional,
		Log:           LogConfig{Level: "info"},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. Environment variables
// referenced as ${VAR} or $VAR are expanded before parsing.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration
	if err != nil {
		return Config{}, fmt.Errorf("lane: load config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return Config{}, fmt.Errorf("lane: parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Bowler) == "" {
		return fmt.Errorf("lane: config: bowler name is required")
	}

	if !c.PendingScores.Valid() {
		return fmt.Errorf("lane: config: unknown pending_scores %q (want %q or %q)",
			c.PendingScores, scoresheet.PendingProvisional, scoresheet.PendingPlaceholder)
	}

	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}

	return nil
}

// NewLogger builds the slog logger described by c. The returned close
// function releases the log file, if any.
func (c LogConfig) NewLogger() (*slog.Logger, func() error, error) {
	level, err := parseLevel(c.Level)
	if err != nil {
		return nil, nil, err
	}

	if c.File == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}

	f, err := os.OpenFile(c.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec // path is caller-provided configuration
	if err != nil {
		return nil, nil, fmt.Errorf("lane: open log file: %w", err)
	}

	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), f.Close, nil
}

func parseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("lane: config: unknown log level %q", s)
	}

	return level, nil
}
