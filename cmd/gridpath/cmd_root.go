package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlath/gridgraph"
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	configPath   string
	mapPath      string
	connectivity int
	heuristic    string
	logLevel     string
	metrics      *bool // set by subcommands that expose --metrics
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   "gridpath",
		Short: "Find least-cost routes on text maps",
		Long: `Find least-cost routes on text maps.

A map is a text file, one grid row per line. The wall character
(default '#') marks blocked cells; any other character is open ground.

Configuration is read from --config (YAML), then GRIDPATH_* environment
variables, then command-line flags, each overriding the previous.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "YAML config file")
	pf.StringVar(&flags.mapPath, "map", "", "map file (required)")
	pf.IntVar(&flags.connectivity, "connectivity", 8, "4 or 8 neighbors per cell")
	pf.StringVar(&flags.heuristic, "heuristic", "euclidean", "euclidean, manhattan, octile, chebyshev or zero")
	pf.StringVar(&flags.logLevel, "log-level", "info", "debug, info, warn or error")

	root.AddCommand(newSolveCmd(flags))
	root.AddCommand(newIslandsCmd(flags))

	return root
}

// load resolves the effective config and parses the map file.
func (f *rootFlags) load(cmd *cobra.Command) (Config, *gridgraph.GridGraph, *slog.Logger, error) {
	cfg, err := LoadConfig(f.configPath)
	if err != nil {
		return cfg, nil, nil, err
	}

	changed := cmd.Flags().Changed
	if changed("connectivity") {
		cfg.Connectivity = f.connectivity
	}
	if changed("heuristic") {
		cfg.Heuristic = f.heuristic
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if f.metrics != nil {
		cfg.Metrics = *f.metrics
	}
	if err = cfg.Validate(); err != nil {
		return cfg, nil, nil, err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	if f.mapPath == "" {
		return cfg, nil, logger, errors.New("--map is required")
	}
	data, err := os.ReadFile(f.mapPath)
	if err != nil {
		return cfg, nil, logger, fmt.Errorf("read map: %w", err)
	}
	gg, err := gridgraph.Parse(string(data), cfg.GridOptions())
	if err != nil {
		return cfg, nil, logger, fmt.Errorf("parse map %s: %w", f.mapPath, err)
	}
	logger.Debug("map loaded",
		slog.String("path", f.mapPath),
		slog.Int("width", gg.Width),
		slog.Int("height", gg.Height),
		slog.Int("connectivity", cfg.Connectivity),
	)

	return cfg, gg, logger, nil
}

// newLogger builds a text logger on w. level has already been validated.
func newLogger(w io.Writer, level string) *slog.Logger {
	lvl, _ := parseLevel(level)
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
