package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	currency "github.com/malusev998/nasdaq-currency"
	"github.com/malusev998/nasdaq-currency/fetchers"
	"github.com/malusev998/nasdaq-currency/reference"
	"github.com/malusev998/nasdaq-currency/session"
)

const EnvPrefix = "NASDAQ_CURRENCY"

var ErrMissingAPIKey = errors.New("api key is not set, use api.key in the config file or " + EnvPrefix + "_API_KEY")

type (
	APISettings struct {
		Key     string        `mapstructure:"key"`
		URL     string        `mapstructure:"url"`
		Timeout time.Duration `mapstructure:"timeout"`
	}

	ChartSettings struct {
		Dir  string `mapstructure:"dir"`
		Open bool   `mapstructure:"open"`
	}

	ValidationSettings struct {
		DatasetScope string `mapstructure:"dataset_scope"`
	}

	LoggingSettings struct {
		Level string `mapstructure:"level"`
	}

	Settings struct {
		API        APISettings        `mapstructure:"api"`
		Chart      ChartSettings      `mapstructure:"chart"`
		Validation ValidationSettings `mapstructure:"validation"`
		Logging    LoggingSettings    `mapstructure:"logging"`
		// Databases narrows the catalog offered at the prompt, all databases when empty.
		Databases []string `mapstructure:"databases"`

		debug bool
	}
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.key", "")
	v.SetDefault("api.url", fetchers.NasdaqURL)
	v.SetDefault("api.timeout", fetchers.DefaultTimeout)
	v.SetDefault("chart.dir", "")
	v.SetDefault("chart.open", true)
	v.SetDefault("validation.dataset_scope", string(session.ScopeDatabase))
	v.SetDefault("logging.level", "info")
	v.SetDefault("databases", []string{})
}

// LoadSettings reads the yaml config file, a missing file is not an error.
// A .env file in the working directory is loaded into the environment first,
// environment variables win over the file.
func LoadSettings(configFile string) (*Settings, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		absolutePath, err := filepath.Abs(configFile)

		if err != nil {
			return nil, err
		}

		_, err = os.Stat(absolutePath)

		switch {
		case err == nil:
			v.SetConfigFile(absolutePath)

			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error while reading in the config file %s: %w", absolutePath, err)
			}
		case !errors.Is(err, fs.ErrNotExist):
			return nil, err
		}
	}

	var settings Settings

	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if settings.API.Key == "" {
		return nil, ErrMissingAPIKey
	}

	if _, err := session.ParseDatasetScope(settings.Validation.DatasetScope); err != nil {
		return nil, err
	}

	if _, err := settings.Level(false); err != nil {
		return nil, err
	}

	if _, err := currency.ConvertToDatabasesFromStringSlice(settings.Databases); err != nil {
		return nil, fmt.Errorf("databases: %w", err)
	}

	return &settings, nil
}

func (s *Settings) Level(debug bool) (slog.Level, error) {
	if debug {
		return slog.LevelDebug, nil
	}

	var level slog.Level

	if err := level.UnmarshalText([]byte(s.Logging.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("logging.level: %w", err)
	}

	return level, nil
}

func (s *Settings) Logger(w io.Writer, debug bool) *slog.Logger {
	level, _ := s.Level(debug)

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (s *Settings) Scope() session.DatasetScope {
	scope, _ := session.ParseDatasetScope(s.Validation.DatasetScope)

	return scope
}

// Catalog returns catalog limited to the configured databases.
func (s *Settings) Catalog(catalog *reference.Catalog) (*reference.Catalog, error) {
	if len(s.Databases) == 0 {
		return catalog, nil
	}

	databases, err := currency.ConvertToDatabasesFromStringSlice(s.Databases)

	if err != nil {
		return nil, err
	}

	return catalog.Only(databases)
}
