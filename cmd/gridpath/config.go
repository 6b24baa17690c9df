package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlath/astar"
	"github.com/katalvlaran/lvlath/gridgraph"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("gridpath: invalid config")

// Config holds the solver settings for one invocation.
type Config struct {
	// Connectivity is 4 (orthogonal) or 8 (with diagonals).
	Connectivity int `yaml:"connectivity"`

	// Heuristic names the goal estimate: euclidean, manhattan, octile,
	// chebyshev or zero.
	Heuristic string `yaml:"heuristic"`

	// Wall is the single character marking blocked cells in map files.
	Wall string `yaml:"wall"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// MaxCacheEntries bounds the route cache. 0 means unbounded.
	MaxCacheEntries int `yaml:"max_cache_entries"`

	// Metrics dumps engine metrics as JSON on stderr before exit.
	Metrics bool `yaml:"metrics"`
}

// DefaultConfig returns the settings used when nothing else is given.
func DefaultConfig() Config {
	return Config{
		Connectivity:    8,
		Heuristic:       "euclidean",
		Wall:            "#",
		LogLevel:        "info",
		MaxCacheEntries: 0,
	}
}

// LoadConfig loads configuration with priority: env > file > defaults.
// Command-line flags are applied on top by the caller.
//
// Inputs:
//   - path: YAML config file (optional, can be empty).
//
// Outputs:
//   - Config: merged configuration.
//   - error: non-nil if the file cannot be read or parsed, or the result
//     fails Validate.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if err := loadConfigFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := loadConfigFromEnv(&cfg); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}

func loadConfigFromEnv(cfg *Config) error {
	if v := os.Getenv("GRIDPATH_CONNECTIVITY"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: GRIDPATH_CONNECTIVITY=%q", ErrInvalidConfig, v)
		}
		cfg.Connectivity = i
	}
	if v := os.Getenv("GRIDPATH_HEURISTIC"); v != "" {
		cfg.Heuristic = v
	}
	if v := os.Getenv("GRIDPATH_WALL"); v != "" {
		cfg.Wall = v
	}
	if v := os.Getenv("GRIDPATH_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("GRIDPATH_MAX_CACHE_ENTRIES"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: GRIDPATH_MAX_CACHE_ENTRIES=%q", ErrInvalidConfig, v)
		}
		cfg.MaxCacheEntries = i
	}
	if v := os.Getenv("GRIDPATH_METRICS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: GRIDPATH_METRICS=%q", ErrInvalidConfig, v)
		}
		cfg.Metrics = b
	}

	return nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Connectivity != 4 && c.Connectivity != 8 {
		return fmt.Errorf("%w: connectivity must be 4 or 8, got %d", ErrInvalidConfig, c.Connectivity)
	}
	if _, err := heuristicByName(c.Heuristic); err != nil {
		return err
	}
	if utf8.RuneCountInString(c.Wall) != 1 {
		return fmt.Errorf("%w: wall must be a single character, got %q", ErrInvalidConfig, c.Wall)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.MaxCacheEntries < 0 {
		return fmt.Errorf("%w: max_cache_entries cannot be negative (%d)", ErrInvalidConfig, c.MaxCacheEntries)
	}

	return nil
}

// GridOptions converts the config into map parsing options.
func (c Config) GridOptions() gridgraph.GridOptions {
	opts := gridgraph.DefaultGridOptions()
	if c.Connectivity == 8 {
		opts.Conn = gridgraph.Conn8
	}
	opts.Wall, _ = utf8.DecodeRuneInString(c.Wall)

	return opts
}

// Glyphs returns the render glyphs, drawing walls with the configured rune.
func (c Config) Glyphs() gridgraph.Glyphs {
	g := gridgraph.DefaultGlyphs()
	g.Wall, _ = utf8.DecodeRuneInString(c.Wall)

	return g
}

func heuristicByName(name string) (astar.Heuristic[gridgraph.Point], error) {
	switch strings.ToLower(name) {
	case "euclidean":
		return gridgraph.Euclidean, nil
	case "manhattan":
		return gridgraph.Manhattan, nil
	case "octile":
		return gridgraph.Octile, nil
	case "chebyshev":
		return gridgraph.Chebyshev, nil
	case "zero":
		return gridgraph.Zero, nil
	}

	return nil, fmt.Errorf("%w: unknown heuristic %q", ErrInvalidConfig, name)
}

func parseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, name)
	}

	return level, nil
}

// parsePoint parses "X,Y" into a grid point.
func parsePoint(s string) (gridgraph.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return gridgraph.Point{}, fmt.Errorf("point %q: want X,Y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return gridgraph.Point{}, fmt.Errorf("point %q: bad X: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return gridgraph.Point{}, fmt.Errorf("point %q: bad Y: %w", s, err)
	}

	return gridgraph.Point{X: x, Y: y}, nil
}
