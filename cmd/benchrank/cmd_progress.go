package main

import (
	"errors"
	"fmt"

	"github.com/spboyer/benchrank/internal/models"
	"github.com/spboyer/benchrank/internal/resolver"
	"github.com/spboyer/benchrank/internal/spinner"
	"github.com/spboyer/benchrank/internal/wizard"
	"github.com/spf13/cobra"
)

// progressOutput is the structured form of a single lookup.
type progressOutput struct {
	Outcome resolver.Outcome    `json:"outcome" yaml:"outcome"`
	View    models.ResolvedView `json:"view" yaml:"view"`
}

func newProgressCommand(g *globalOptions) *cobra.Command {
	var format string
	var allTabs bool

	cmd := &cobra.Command{
		Use:   "progress [benchmark difficulty userId]",
		Short: "Look up a player's benchmark progress",
		Long: `Look up a player's progress on one benchmark difficulty.

With no arguments on an interactive terminal, a picker prompts for the
benchmark, player and difficulty. With --all-tabs, pass only the benchmark
and player id; every difficulty is resolved concurrently.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if allTabs {
				return cobra.ExactArgs(2)(cmd, args)
			}
			if len(args) != 0 && len(args) != 3 {
				return fmt.Errorf("accepts 0 or 3 arg(s), received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			a, err := g.loadApp(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if allTabs {
				stop := spinner.Start(cmd.ErrOrStderr(), "Fetching benchmark progress")
				results, err := a.resolver.ResolveAll(cmd.Context(), args[0], args[1])
				stop()
				if errors.Is(err, resolver.ErrUnknownBenchmark) {
					return fmt.Errorf("%w: %q", err, args[0])
				}
				if err != nil {
					return err
				}
				if format != formatTable {
					outputs := make([]progressOutput, 0, len(results))
					for _, r := range results {
						outputs = append(outputs, progressOutput{Outcome: r.Outcome, View: r.View})
					}
					return writeStructured(out, format, outputs)
				}
				for i, r := range results {
					if i > 0 {
						fmt.Fprintln(out)
					}
					printProgress(out, r.View, r.Outcome)
				}
				return nil
			}

			var benchmark, difficulty, userID string
			if len(args) == 3 {
				benchmark, difficulty, userID = args[0], args[1], args[2]
			} else {
				if !wizard.IsTerminal(cmd.InOrStdin()) {
					return errors.New("benchmark, difficulty and userId are required when not running interactively")
				}
				sel, err := wizard.RunProgressWizard(cmd.InOrStdin(), cmd.OutOrStdout(), a.store, "")
				if err != nil {
					return err
				}
				benchmark, difficulty, userID = sel.Benchmark, sel.Difficulty, sel.UserID
			}

			stop := spinner.Start(cmd.ErrOrStderr(), "Fetching benchmark progress")
			view, outcome := a.resolver.ResolveWithOutcome(cmd.Context(), benchmark, difficulty, userID)
			stop()
			if format != formatTable {
				return writeStructured(out, format, progressOutput{Outcome: outcome, View: view})
			}
			printProgress(out, view, outcome)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatTable, "Output format: table, json or yaml")
	cmd.Flags().BoolVar(&allTabs, "all-tabs", false, "Resolve every difficulty of the benchmark")

	return cmd
}
