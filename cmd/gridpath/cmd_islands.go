package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newIslandsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "islands",
		Short: "List the walkable regions of a map",
		Long: `List the walkable regions of a map.

Two cells share a region when a route connects them under the configured
connectivity. A route query between different regions always fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, gg, _, err := flags.load(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			islands := gg.ConnectedComponents()
			fmt.Fprintf(out, "islands=%d\n", len(islands))
			for i, cells := range islands {
				fmt.Fprintf(out, "island %d: %d cells, first (%d,%d)\n", i, len(cells), cells[0].X, cells[0].Y)
			}

			return nil
		},
	}
}
