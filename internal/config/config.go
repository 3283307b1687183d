package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"pkg.jsn.cam/empgen/pkg/employees"
)

var (
	ErrInvalidSize       = errors.New("invalid size")
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrUnknownKey        = errors.New("unknown config key")
	ErrInvalidConfig     = errors.New("invalid config")
)

// Config holds the options of a generation run.
type Config struct {
	Output      string `toml:"output" yaml:"output"`
	TargetBytes Size   `toml:"bytes" yaml:"bytes"`
	Seed        int64  `toml:"seed" yaml:"seed"`
	FlushBytes  Size   `toml:"flush_bytes" yaml:"flush_bytes"`
	History     string `toml:"history" yaml:"history"` // bbolt run ledger, empty disables it
	Progress    bool   `toml:"progress" yaml:"progress"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Output:      employees.DefaultOutput,
		TargetBytes: employees.DefaultTargetBytes,
		Seed:        employees.DefaultSeed,
		FlushBytes:  employees.DefaultFlushBytes,
		Progress:    true,
	}
}

// Load reads a TOML or YAML file over the defaults. The format is chosen
// by extension.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return cfg, fmt.Errorf("parsing %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, fmt.Errorf("%w in %s: %s", ErrUnknownKey, path, undecoded[0])
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return cfg, cfg.Validate()
}

// Validate checks that the configuration can drive a run.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("%w: output path is required", ErrInvalidConfig)
	}
	if c.TargetBytes < 0 {
		return fmt.Errorf("%w: bytes must not be negative", ErrInvalidConfig)
	}
	if c.FlushBytes < 0 || int64(c.FlushBytes) > math.MaxInt {
		return fmt.Errorf("%w: flush_bytes out of range", ErrInvalidConfig)
	}
	return nil
}

// Options converts the configuration into generator options.
func (c Config) Options() employees.Options {
	return employees.Options{
		Path:        c.Output,
		TargetBytes: int64(c.TargetBytes),
		Seed:        c.Seed,
		FlushBytes:  int(c.FlushBytes),
	}
}
