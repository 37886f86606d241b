package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ghettovoice/httpmsg/log"
)

func newRootCommand() *cobra.Command {
	var (
		logLevel string
		devLog   bool
	)

	cmd := &cobra.Command{
		Use:           "httpmsg",
		Short:         "httpmsg inspects URIs and byte streams",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := log.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}

			var logger *slog.Logger
			if devLog {
				logger = log.NewDev(cmd.ErrOrStderr(), lvl)
			} else {
				logger = log.NewConsole(cmd.ErrOrStderr(), lvl)
			}
			log.SetDefault(logger)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug|info|warn|error")
	cmd.PersistentFlags().BoolVar(&devLog, "dev-log", false, "Use the developer log format")

	cmd.AddCommand(newURICommand())
	cmd.AddCommand(newCatCommand())

	return cmd
}
