package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"numerology/internal/reading"
	"numerology/internal/reading/handler"
)

func newCalcCmd(root *rootOptions) *cobra.Command {
	var (
		name     string
		date     string
		jsonFlag bool
	)
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate Life Path, Destiny, Soul Urge and Personality numbers",
		Example: `  numerology calc --name "John Smith" --date 1990-07-16
  numerology calc --name "Mary Ann" --date 1985-12-31 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := handler.CalculateRequest{FullName: name, BirthDate: date}
			if err := req.Validate(); err != nil {
				return err
			}

			svc, err := root.service(cmd)
			if err != nil {
				return err
			}
			result, err := svc.Calculate(cmd.Context(), reading.Request{
				FullName:  req.FullName,
				BirthDate: req.ParsedBirthDate(),
			})
			if err != nil {
				return err
			}

			if jsonFlag {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(handler.FromReading(result))
			}
			return printReading(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "full name")
	cmd.Flags().StringVarP(&date, "date", "d", "", "birth date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "print the reading as JSON")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func printReading(w io.Writer, r *reading.Reading) error {
	if _, err := fmt.Fprintf(w, "Name:       %s\nBirth date: %s\n", r.FullName, r.BirthDate); err != nil {
		return err
	}
	for _, f := range r.Figures() {
		if err := printFigure(w, f); err != nil {
			return err
		}
	}
	return nil
}

func printFigure(w io.Writer, f reading.Figure) error {
	label := fmt.Sprintf("%d", f.Number)
	if f.Master() {
		label += " (master number)"
	}
	_, err := fmt.Fprintf(w, "\n%-12s %s\n  %s\n", f.Category.Title(), label, f.Meaning)
	return err
}
