package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	currency "github.com/malusev998/nasdaq-currency"
	"github.com/malusev998/nasdaq-currency/fetchers"
	"github.com/malusev998/nasdaq-currency/reference"
	"github.com/malusev998/nasdaq-currency/session"
)

func TestLoadSettings_Defaults(t *testing.T) {
	t.Setenv(EnvPrefix+"_API_KEY", "from-env")
	asserts := require.New(t)

	settings, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yml"))

	asserts.NoError(err)
	asserts.Equal("from-env", settings.API.Key)
	asserts.Equal(fetchers.NasdaqURL, settings.API.URL)
	asserts.Equal(fetchers.DefaultTimeout, settings.API.Timeout)
	asserts.True(settings.Chart.Open)
	asserts.Equal(session.ScopeDatabase, settings.Scope())

	level, err := settings.Level(false)
	asserts.NoError(err)
	asserts.Equal(slog.LevelInfo, level)

	level, err = settings.Level(true)
	asserts.NoError(err)
	asserts.Equal(slog.LevelDebug, level)
}

func TestLoadSettings_File(t *testing.T) {
	t.Setenv(EnvPrefix+"_API_KEY", "")
	t.Setenv(EnvPrefix+"_API_TIMEOUT", "")
	asserts := require.New(t)

	path := filepath.Join(t.TempDir(), "config.yml")
	content := `api:
  key: from-file
  timeout: 10s
validation:
  dataset_scope: any
logging:
  level: warn
`
	asserts.NoError(os.WriteFile(path, []byte(content), 0o600))

	settings, err := LoadSettings(path)

	asserts.NoError(err)
	asserts.Equal("from-file", settings.API.Key)
	asserts.Equal(10*time.Second, settings.API.Timeout)
	asserts.Equal(session.ScopeAny, settings.Scope())

	level, err := settings.Level(false)
	asserts.NoError(err)
	asserts.Equal(slog.LevelWarn, level)
}

func TestLoadSettings_EnvOverridesFile(t *testing.T) {
	t.Setenv(EnvPrefix+"_API_KEY", "from-env")
	asserts := require.New(t)

	path := filepath.Join(t.TempDir(), "config.yml")
	asserts.NoError(os.WriteFile(path, []byte("api:\n  key: from-file\n"), 0o600))

	settings, err := LoadSettings(path)

	asserts.NoError(err)
	asserts.Equal("from-env", settings.API.Key)
}

func TestLoadSettings_Errors(t *testing.T) {
	t.Setenv(EnvPrefix+"_API_KEY", "")

	t.Run("MissingKey", func(t *testing.T) {
		_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yml"))

		require.ErrorIs(t, err, ErrMissingAPIKey)
	})

	t.Run("InvalidScope", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("api:\n  key: k\nvalidation:\n  dataset_scope: everything\n"), 0o600))

		_, err := LoadSettings(path)

		require.Error(t, err)
	})

	t.Run("InvalidLevel", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("api:\n  key: k\nlogging:\n  level: loud\n"), 0o600))

		_, err := LoadSettings(path)

		require.Error(t, err)
	})

	t.Run("UnknownDatabase", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("api:\n  key: k\ndatabases:\n  - FRED\n  - fred\n"), 0o600))

		_, err := LoadSettings(path)

		require.Error(t, err)
	})

	t.Run("MalformedFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("api: [\n"), 0o600))

		_, err := LoadSettings(path)

		require.Error(t, err)
	})
}

func TestSettings_Catalog(t *testing.T) {
	t.Setenv(EnvPrefix+"_API_KEY", "")
	t.Setenv(EnvPrefix+"_DATABASES", "")
	asserts := require.New(t)

	path := filepath.Join(t.TempDir(), "config.yml")
	asserts.NoError(os.WriteFile(path, []byte("api:\n  key: k\ndatabases:\n  - ECB\n  - FRED\n"), 0o600))

	settings, err := LoadSettings(path)
	asserts.NoError(err)

	catalog, err := settings.Catalog(reference.Default())
	asserts.NoError(err)
	asserts.Equal([]currency.Database{currency.EuropeanCentralBank, currency.FederalReserve}, catalog.Databases())

	all, err := (&Settings{}).Catalog(reference.Default())
	asserts.NoError(err)
	asserts.Same(reference.Default(), all)
}
