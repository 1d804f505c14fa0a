package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"numerology/internal/numerology"
)

func newReduceCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "reduce <n>",
		Short:   "Show the digit-sum reduction of a non-negative integer",
		Example: "  numerology reduce 1990",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return fmt.Errorf("reduce: %q is not a non-negative integer", args[0])
			}

			chain := numerology.ReductionChain(n)
			steps := make([]string, len(chain))
			for i, v := range chain {
				steps[i] = strconv.Itoa(int(v))
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(steps, " → "))
			return err
		},
	}
}
