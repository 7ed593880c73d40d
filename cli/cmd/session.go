package cmd

import (
	"github.com/spf13/cobra"

	"github.com/malusev998/nasdaq-currency/session"
)

func interactiveCobraCommand(config *Config) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		settings, err := config.settings()

		if err != nil {
			return err
		}

		catalog, err := settings.Catalog(config.Catalog)

		if err != nil {
			return err
		}

		queries := queryService(cmd, catalog, settings)

		s := session.New(session.Config{
			Catalog: catalog,
			Queries: queries,
			Scope:   settings.Scope(),
			In:      cmd.InOrStdin(),
			Out:     cmd.OutOrStdout(),
			Logger:  queries.Logger,
		})

		return s.Run(cmd.Context())
	}
}
