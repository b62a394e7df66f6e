package main

import (
	"fmt"

	"github.com/spboyer/benchrank/internal/models"
	"github.com/spf13/cobra"
)

func newBenchmarksCommand(g *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "benchmarks [key]",
		Short: "List benchmark metadata",
		Long: `List the benchmark table: labels, difficulty tabs and their ranking ids.

Pass a benchmark key to show a single benchmark.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			a, err := g.loadApp(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			selected := make(models.AllBenchmarks)
			if len(args) == 1 {
				spec, ok := a.store.Benchmark(args[0])
				if !ok {
					return fmt.Errorf("unknown benchmark %q", args[0])
				}
				selected[args[0]] = spec
			} else {
				for _, key := range a.store.Keys() {
					spec, _ := a.store.Benchmark(key)
					selected[key] = spec
				}
			}

			if format != formatTable {
				return writeStructured(cmd.OutOrStdout(), format, selected)
			}
			printBenchmarks(cmd.OutOrStdout(), selected)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatTable, "Output format: table, json or yaml")
	return cmd
}
