package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"numerology/internal/numerology"
	"numerology/pkg/domain"
	dErrors "numerology/pkg/domain-errors"
)

func newMeaningCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "meaning <category> <number>",
		Short:     "Print the interpretation of a number in a category",
		Example:   "  numerology meaning lifePath 7",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"lifePath", "destiny", "soulUrge", "personality"},
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := domain.ParseCategory(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return dErrors.Wrap(err, dErrors.CodeInvalidInput, fmt.Sprintf("meaning: %q is not an integer", args[1]))
			}

			svc, err := root.service(cmd)
			if err != nil {
				return err
			}
			figure, err := svc.Meaning(cmd.Context(), category, numerology.Number(n))
			if err != nil {
				return err
			}
			return printFigure(cmd.OutOrStdout(), *figure)
		},
	}
}
