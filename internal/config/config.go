package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/klauspost/compress/zstd"

	"github.com/suykerbuyk/diffmarks/internal/logging"
	"github.com/suykerbuyk/diffmarks/internal/textio"
)

// Config holds all diffmarks configuration. None of it changes what the
// stripper does to the text, only how the result lands on disk and what
// gets logged.
type Config struct {
	LogLevel string `toml:"log_level"`

	Output      OutputConfig      `toml:"output"`
	Compression CompressionConfig `toml:"compression"`
}

// OutputConfig controls how the result is written. With Atomic the output is
// staged in a temp file and renamed into place, but only when the path is
// absent or a plain regular file; anything else is written in place.
type OutputConfig struct {
	Atomic   bool   `toml:"atomic"`
	FileMode string `toml:"file_mode"`
}

type CompressionConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel: "warn",
		Output: OutputConfig{
			Atomic:   false,
			FileMode: "0644",
		},
		Compression: CompressionConfig{
			Level: "default",
		},
	}
}

// Load reads config from the standard path, falling back to defaults.
func Load() (Config, error) {
	cfg := DefaultConfig()

	for _, p := range configPaths() {
		if _, err := os.Stat(p); err == nil {
			if _, err := toml.DecodeFile(p, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", p, err)
			}
			if err := cfg.Validate(); err != nil {
				return cfg, fmt.Errorf("config %s: %w", p, err)
			}
			break
		}
	}

	return cfg, nil
}

// configPaths lists candidate config files in priority order:
// $XDG_CONFIG_HOME/diffmarks, then ~/.config/diffmarks.
func configPaths() []string {
	var paths []string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "diffmarks", "config.toml"))
	}

	home, _ := os.UserHomeDir()
	if home != "" {
		paths = append(paths, filepath.Join(home, ".config", "diffmarks", "config.toml"))
	}

	return paths
}

// Validate reports the first field that cannot be turned into a setting.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := parseFileMode(c.Output.FileMode); err != nil {
		return err
	}
	if _, err := parseZstdLevel(c.Compression.Level); err != nil {
		return err
	}
	return nil
}

// WriteOptions converts the output and compression sections for textio.
func (c Config) WriteOptions() (textio.WriteOptions, error) {
	mode, err := parseFileMode(c.Output.FileMode)
	if err != nil {
		return textio.WriteOptions{}, err
	}
	level, err := parseZstdLevel(c.Compression.Level)
	if err != nil {
		return textio.WriteOptions{}, err
	}
	return textio.WriteOptions{
		Atomic: c.Output.Atomic,
		Mode:   mode,
		Level:  level,
	}, nil
}

func parseFileMode(s string) (os.FileMode, error) {
	if s == "" {
		return 0o644, nil
	}
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil || v > 0o777 {
		return 0, fmt.Errorf("output.file_mode %q: want an octal permission like \"0644\"", s)
	}
	return os.FileMode(v), nil
}

func parseZstdLevel(s string) (zstd.EncoderLevel, error) {
	switch strings.ToLower(s) {
	case "", "default":
		return zstd.SpeedDefault, nil
	case "fastest":
		return zstd.SpeedFastest, nil
	case "better":
		return zstd.SpeedBetterCompression, nil
	case "best":
		return zstd.SpeedBestCompression, nil
	}
	return 0, fmt.Errorf("compression.level %q: want fastest, default, better or best", s)
}
