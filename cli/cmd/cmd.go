package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/malusev998/nasdaq-currency/chart"
	"github.com/malusev998/nasdaq-currency/fetchers"
	"github.com/malusev998/nasdaq-currency/reference"
	"github.com/malusev998/nasdaq-currency/services"
)

type (
	Config struct {
		Ctx     context.Context
		Catalog *reference.Catalog
		In      io.Reader
		Out     io.Writer
		Err     io.Writer

		debug      bool
		configFile string
	}
)

func NewRootCommand(config *Config) *cobra.Command {
	if config.Catalog == nil {
		config.Catalog = reference.Default()
	}

	rootCmd := &cobra.Command{
		Use:          "nasdaq-currency",
		Short:        "Currency exchange rate charts from Nasdaq Data Link",
		Version:      "v1.0.0",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         interactiveCobraCommand(config),
	}

	rootCmd.PersistentFlags().BoolVar(&config.debug, "debug", false, "Debug flag")
	rootCmd.PersistentFlags().StringVar(&config.configFile, "config", "./config.yml", "Path to config file")

	if config.In != nil {
		rootCmd.SetIn(config.In)
	}

	if config.Out != nil {
		rootCmd.SetOut(config.Out)
	}

	if config.Err != nil {
		rootCmd.SetErr(config.Err)
	}

	rootCmd.AddCommand(databases(config), datasets(config), show(config))

	return rootCmd
}

func Execute(config *Config) error {
	ctx := config.Ctx

	if ctx == nil {
		ctx = context.Background()
	}

	return NewRootCommand(config).ExecuteContext(ctx)
}

func (c *Config) settings() (*Settings, error) {
	settings, err := LoadSettings(c.configFile)

	if err != nil {
		return nil, err
	}

	settings.debug = c.debug

	return settings, nil
}

func queryService(cmd *cobra.Command, catalog *reference.Catalog, settings *Settings) services.QueryService {
	return services.QueryService{
		Fetcher: fetchers.NewCurrencyFetcher(fetchers.NasdaqConfig{
			BaseConfig: fetchers.BaseConfig{
				URL:     settings.API.URL,
				Timeout: settings.API.Timeout,
			},
			APIKey: settings.API.Key,
		}),
		Presenter: services.Presenter{
			Catalog: catalog,
			Charts: chart.EChartsRenderer{
				Dir:  settings.Chart.Dir,
				Open: settings.Chart.Open,
			},
			Out: cmd.OutOrStdout(),
		},
		Logger: settings.Logger(cmd.ErrOrStderr(), settings.debug),
	}
}
