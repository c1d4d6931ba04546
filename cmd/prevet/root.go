package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/prevet-dev/prevet/log"
)

const version = "0.1.0"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "prevet",
		Short:         "Prevet runs validation profiles against target environments",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	persistent := cmd.PersistentFlags()
	persistent.BoolP("verbose", "v", false, "enable debug logging")
	persistent.Bool("log-json", false, "emit logs as JSON")

	cmd.PersistentPreRun = func(c *cobra.Command, args []string) {
		verbose, _ := c.Flags().GetBool("verbose")
		logJSON, _ := c.Flags().GetBool("log-json")

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		log.Setup(log.WithLevel(level), log.WithJSON(logJSON))
	}

	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newSchemaCmd())

	return cmd
}
