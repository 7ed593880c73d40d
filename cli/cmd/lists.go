package cmd

import (
	"github.com/spf13/cobra"

	currency "github.com/malusev998/nasdaq-currency"
	"github.com/malusev998/nasdaq-currency/session"
)

func databases(config *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "databases",
		Short: "Print the known database codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Catalog.PrintDatabases(cmd.OutOrStdout())
		},
	}
}

func datasets(config *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "datasets DATABASE",
		Short: "Print the data set codes of a database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := currency.ConvertToDatabaseFromString(args[0])

			if err != nil {
				return err
			}

			return config.Catalog.PrintDatasets(cmd.OutOrStdout(), database)
		},
	}
}

func show(config *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "show DATABASE DATASET",
		Short: "Fetch and display one data set without prompting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := currency.ConvertToDatabaseFromString(args[0])

			if err != nil {
				return err
			}

			settings, err := config.settings()

			if err != nil {
				return err
			}

			catalog, err := settings.Catalog(config.Catalog)

			if err != nil {
				return err
			}

			dataset := args[1]

			if !catalog.HasDatabase(database.String()) || !session.Accepts(catalog, settings.Scope(), database, dataset) {
				return &currency.LookupError{Database: database, Dataset: dataset}
			}

			return queryService(cmd, catalog, settings).Run(cmd.Context(), database, dataset)
		},
	}
}
