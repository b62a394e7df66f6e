package main

import (
	"fmt"

	"github.com/spboyer/benchrank/internal/validation"
	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a benchmark metadata file",
		Long: `Validate a benchmark metadata file (JSON or YAML) against the benchmark
table schema. Exits with status 1 and prints every violation when the file
does not conform.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			violations, err := validation.ValidateBenchmarksFile(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(violations) > 0 {
				fmt.Fprintf(out, "✗ %s\n", path)
				for _, v := range violations {
					fmt.Fprintf(out, "  - %s\n", v)
				}
				return &ValidationFailedError{Path: path, Violations: violations}
			}
			fmt.Fprintf(out, "✓ %s is valid\n", path)
			return nil
		},
	}
}
