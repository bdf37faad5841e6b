// Package config loads the settings of the transition command and registers
// user-defined curves.
//
// Settings are merged from, in increasing order of precedence, the embedded
// defaults, an optional TOML or YAML file, TRANSITION_* environment
// variables and explicit overrides (usually command line flags).
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"honnef.co/go/transition"
	"honnef.co/go/transition/internal/logging"
)

// EnvPrefix is the prefix of environment variables that override settings.
// TRANSITION_PLOT_STEPS overrides plot.steps, for example.
const EnvPrefix = "TRANSITION_"

var (
	ErrUnsupportedFormat = errors.New("unsupported config file format")
	ErrInvalid           = errors.New("invalid config")
	ErrUnknownBase       = errors.New("unknown base curve")
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Config holds the settings of the transition command.
type Config struct {
	Sample SampleConfig           `koanf:"sample"`
	Plot   PlotConfig             `koanf:"plot"`
	Curves map[string]CurveConfig `koanf:"curves"`
}

// SampleConfig controls the sample command.
type SampleConfig struct {
	Steps     int `koanf:"steps"`
	Precision int `koanf:"precision"`
}

// PlotConfig controls the plot command.
type PlotConfig struct {
	Steps     int `koanf:"steps"`
	Precision int `koanf:"precision"`
	Width     int `koanf:"width"`
	Height    int `koanf:"height"`
}

// CurveConfig defines a curve in terms of a registered one, with some of its
// parameters bound. For example, the following TOML registers a family
// "Snappy" of cubic Bézier curves:
//
//	[curves.Snappy]
//	base = "Bezier"
//	params = [0.2, 0.9, 0.1, 1.0]
type CurveConfig struct {
	// Base names the registered curve to derive from. For families, the
	// raw (ease-in) curve is used.
	Base   string    `koanf:"base"`
	Params []float64 `koanf:"params"`
	// Bare registers the curve without deriving variants.
	Bare bool `koanf:"bare"`
}

// Load loads the configuration. The file at path is optional and skipped if
// path is empty; its format is chosen by its extension. Keys in overrides
// take precedence over all other sources.
func Load(path string, overrides map[string]any) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		var parser koanf.Parser
		switch strings.ToLower(filepath.Ext(path)) {
		case ".toml":
			parser = toml.Parser()
		case ".yaml", ".yml":
			parser = yaml.Parser()
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load overrides: %w", err)
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the settings are usable.
func (cfg *Config) Validate() error {
	switch {
	case cfg.Sample.Steps < 1:
		return fmt.Errorf("%w: sample.steps must be positive, got %d", ErrInvalid, cfg.Sample.Steps)
	case cfg.Plot.Steps < 1:
		return fmt.Errorf("%w: plot.steps must be positive, got %d", ErrInvalid, cfg.Plot.Steps)
	case cfg.Sample.Precision < 0:
		return fmt.Errorf("%w: sample.precision mustn't be negative, got %d", ErrInvalid, cfg.Sample.Precision)
	case cfg.Plot.Precision < 0:
		return fmt.Errorf("%w: plot.precision mustn't be negative, got %d", ErrInvalid, cfg.Plot.Precision)
	case cfg.Plot.Width < 1 || cfg.Plot.Height < 1:
		return fmt.Errorf("%w: plot size must be positive, got %dx%d", ErrInvalid, cfg.Plot.Width, cfg.Plot.Height)
	}
	for name, c := range cfg.Curves {
		if name == "" || strings.Contains(name, ".") {
			return fmt.Errorf("%w: curve name %q", ErrInvalid, name)
		}
		if c.Base == "" {
			return fmt.Errorf("%w: curve %q has no base", ErrInvalid, name)
		}
	}
	return nil
}

// Apply registers the user-defined curves in r, in name order. Curves may
// build on curves defined before them in that order.
func Apply(r *transition.Registry, cfg *Config) error {
	logger := logging.GetLogger("config")
	names := make([]string, 0, len(cfg.Curves))
	for name := range cfg.Curves {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		c := cfg.Curves[name]
		raw, ok := r.Raw(c.Base)
		if !ok {
			return fmt.Errorf("curve %q: %w %q", name, ErrUnknownBase, c.Base)
		}
		fn := transition.Bind(raw, c.Params...).Func()
		if c.Bare {
			r.RegisterBare(name, fn)
		} else {
			r.RegisterFamily(name, fn)
		}
		logger.Debug().
			Str("name", name).
			Str("base", c.Base).
			Floats64("params", c.Params).
			Bool("bare", c.Bare).
			Msg("Registered curve")
	}
	return nil
}
