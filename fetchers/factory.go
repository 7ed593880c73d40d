package fetchers

import (
	"net/http"
	"time"

	currency "github.com/malusev998/nasdaq-currency"
)

type (
	BaseConfig struct {
		URL     string
		Timeout time.Duration
	}
	NasdaqConfig struct {
		BaseConfig
		APIKey string
	}
)

func NewCurrencyFetcher(config NasdaqConfig) currency.Fetcher {
	timeout := config.Timeout

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return NasdaqFetcher{
		URL:    config.URL,
		APIKey: config.APIKey,
		Client: &http.Client{Timeout: timeout},
	}
}
