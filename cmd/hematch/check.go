package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coregx/hematch/engine"
)

// newCheckCmd exposes engine.Check directly: validate a pattern and report
// the path count its plan would produce, without touching any ciphertext
// (system §9's pattern-only validation entry point).
func newCheckCmd() *cobra.Command {
	var (
		pattern string
		length  int
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a pattern and report its planned path count",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := engine.Check(pattern, length, engine.DefaultConfig())
			if err != nil {
				return fmt.Errorf("pattern %q: %w", pattern, err)
			}
			estimate, err := engine.EstimateCost(pattern, length, engine.DefaultConfig())
			if err != nil {
				return fmt.Errorf("pattern %q: %w", pattern, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d path(s) for content length %d (upper bound %d)\n", plan.Len(), length, estimate)
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "regex pattern to validate (required)")
	cmd.Flags().IntVarP(&length, "length", "l", 0, "content length to plan against")
	_ = cmd.MarkFlagRequired("pattern")

	return cmd
}
