package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"numerology/internal/interpretation"
	"numerology/internal/platform/logger"
	"numerology/internal/reading"
)

type rootOptions struct {
	logLevel     string
	meaningsFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "numerology",
		Short: "Pythagorean numerology calculator",
		Long: `Numerology derives the Life Path, Destiny, Soul Urge and Personality numbers
from a full name and a birth date.

Commands:
  calc     Calculate all four numbers with their interpretations
  reduce   Show how a number reduces to a single digit or master number
  meaning  Print the interpretation for a category and number`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug/info/warn/error")
	cmd.PersistentFlags().StringVar(&opts.meaningsFile, "meanings", "", "YAML file overriding built-in interpretations")

	cmd.AddCommand(newCalcCmd(opts))
	cmd.AddCommand(newReduceCmd())
	cmd.AddCommand(newMeaningCmd(opts))
	return cmd
}

// service builds a reading service that logs to the command's error stream.
func (o *rootOptions) service(cmd *cobra.Command) (*reading.Service, error) {
	catalog := interpretation.Default()
	if o.meaningsFile != "" {
		var err error
		catalog, err = interpretation.LoadFile(o.meaningsFile)
		if err != nil {
			return nil, err
		}
	}
	return reading.New(catalog, reading.WithLogger(o.logger(cmd))), nil
}

func (o *rootOptions) logger(cmd *cobra.Command) *slog.Logger {
	return logger.New(cmd.ErrOrStderr(), o.logLevel, "text")
}
