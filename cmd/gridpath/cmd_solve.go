package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlath/astar"
	"github.com/katalvlaran/lvlath/gridgraph"
)

func newSolveCmd(flags *rootFlags) *cobra.Command {
	var from, to []string
	var quiet, metrics bool

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Draw the least-cost route between two cells",
		Long: `Draw the least-cost route between two cells.

Cells are given as X,Y with X the column and Y the row, both zero-based.
Repeat --from/--to to solve several pairs on the same map; pairs are
matched by position and share one route cache.

Moves cost their Euclidean length: 1 orthogonally, √2 diagonally.

Examples:
  gridpath solve --map level.txt --from 0,0 --to 9,4
  gridpath solve --map level.txt --from 0,0 --to 9,4 --connectivity 4 --heuristic manhattan
  gridpath solve --map level.txt --from 0,0 --to 9,4 --from 9,4 --to 0,0 --quiet`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(from) == 0 || len(from) != len(to) {
				return fmt.Errorf("need matching --from and --to, got %d and %d", len(from), len(to))
			}
			if cmd.Flags().Changed("metrics") {
				flags.metrics = &metrics
			}
			return runSolve(cmd, flags, from, to, quiet)
		},
	}
	cmd.Flags().StringArrayVar(&from, "from", nil, "start cell X,Y")
	cmd.Flags().StringArrayVar(&to, "to", nil, "goal cell X,Y")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "print only the cost line")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "dump engine metrics as JSON on stderr")

	return cmd
}

func runSolve(cmd *cobra.Command, flags *rootFlags, from, to []string, quiet bool) error {
	cfg, gg, logger, err := flags.load(cmd)
	if err != nil {
		return err
	}
	heuristic, err := heuristicByName(cfg.Heuristic)
	if err != nil {
		return err
	}
	if cfg.Connectivity == 8 && cfg.Heuristic == "manhattan" {
		logger.Warn("manhattan overestimates diagonal moves; routes may be suboptimal")
	}

	mp, shutdown, err := newMeterProvider(cmd.ErrOrStderr(), cfg.Metrics)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn("flush metrics", slog.String("error", err.Error()))
		}
	}()

	eng, err := astar.New(gg.Neighbors, heuristic, gridgraph.Euclidean,
		astar.WithLogger(logger),
		astar.WithMeterProvider(mp),
		astar.WithMaxEntries(cfg.MaxCacheEntries),
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i := range from {
		src, err := cellArg(gg, "--from", from[i])
		if err != nil {
			return err
		}
		dst, err := cellArg(gg, "--to", to[i])
		if err != nil {
			return err
		}

		path, err := eng.FindPath(src, dst)
		if err != nil {
			return err
		}
		if !quiet {
			fmt.Fprintln(out, gg.Render(src, path, cfg.Glyphs()))
		}
		fmt.Fprintf(out, "cost=%.4f hops=%d\n", astar.PathCost(gridgraph.Euclidean, src, path), len(path))
	}

	st := eng.Stats()
	logger.Info("solve finished",
		slog.Int("queries", len(from)),
		slog.Int("searches", st.Searches),
		slog.Int("cache_hits", st.Hits),
		slog.Int("expanded", st.Expanded),
	)

	return nil
}

// cellArg parses a point flag and checks it lies on the map.
func cellArg(gg *gridgraph.GridGraph, flag, value string) (gridgraph.Point, error) {
	p, err := parsePoint(value)
	if err != nil {
		return p, fmt.Errorf("%s: %w", flag, err)
	}
	if !gg.InBounds(p.X, p.Y) {
		return p, fmt.Errorf("%s: %w: (%d,%d) in %d×%d map",
			flag, gridgraph.ErrOutOfBounds, p.X, p.Y, gg.Width, gg.Height)
	}

	return p, nil
}
