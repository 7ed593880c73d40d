package fetchers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	currency "github.com/malusev998/nasdaq-currency"
)

var jsonNull = []byte("null")

// NasdaqFetcher downloads one data set from the Nasdaq Data Link time-series API.
type NasdaqFetcher struct {
	URL    string
	APIKey string
	Client *http.Client
}

// BuildURL fills {base}/{database}/{dataset}/data.json?api_key={key}.
func (f NasdaqFetcher) BuildURL(database currency.Database, dataset string) string {
	base := f.URL

	if base == "" {
		base = NasdaqURL
	}

	return fmt.Sprintf(
		"%s/%s/%s/data.json?api_key=%s",
		strings.TrimRight(base, "/"),
		url.PathEscape(database.String()),
		url.PathEscape(dataset),
		url.QueryEscape(f.APIKey),
	)
}

func (f NasdaqFetcher) Fetch(ctx context.Context, database currency.Database, dataset string) ([]currency.RawPrice, error) {
	const op = "fetchers.NasdaqFetcher.Fetch"

	fetchErr := func(err error) error {
		return &currency.FetchError{Database: database, Dataset: dataset, Err: err}
	}

	if f.APIKey == "" {
		return nil, fetchErr(ErrUnAuthorized)
	}

	client := f.Client

	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}

	req, err := newRequest(ctx, f.BuildURL(database, dataset))

	if err != nil {
		return nil, fetchErr(errors.Wrap(err, op))
	}

	res, err := client.Do(req)

	if err != nil {
		return nil, fetchErr(errors.Wrap(redactKey(err, f.APIKey), op))
	}

	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)

	if err != nil {
		return nil, fetchErr(errors.Wrap(err, op))
	}

	if err := handleHTTPStatusCodeError(res, body); err != nil {
		return nil, fetchErr(err)
	}

	return decodeDataset(body)
}

func decodeDataset(body []byte) ([]currency.RawPrice, error) {
	var data datasetResponse

	if err := json.Unmarshal(body, &data); err != nil {
		return nil, &currency.ParseError{Err: err}
	}

	if data.DatasetData == nil {
		return nil, &currency.ParseError{Err: ErrMissingData}
	}

	prices := make([]currency.RawPrice, 0, len(data.DatasetData.Data))

	for i, row := range data.DatasetData.Data {
		if len(row) < 2 {
			return nil, &currency.ParseError{Value: fmt.Sprintf("row %d", i), Err: ErrShortRow}
		}

		var date string

		if err := json.Unmarshal(row[0], &date); err != nil {
			return nil, &currency.ParseError{Value: string(row[0]), Err: err}
		}

		// Gaps in a series come back as null prices.
		if bytes.Equal(bytes.TrimSpace(row[1]), jsonNull) {
			continue
		}

		var price decimal.Decimal

		if err := price.UnmarshalJSON(row[1]); err != nil {
			return nil, &currency.ParseError{Value: string(row[1]), Err: err}
		}

		prices = append(prices, currency.RawPrice{Date: date, Price: price})
	}

	return prices, nil
}

// redactKey keeps the API key out of *url.Error messages, they embed the full URL.
func redactKey(err error, key string) error {
	var urlErr *url.Error

	if key == "" || !errors.As(err, &urlErr) {
		return err
	}

	redacted := *urlErr
	redacted.URL = strings.ReplaceAll(urlErr.URL, url.QueryEscape(key), "REDACTED")

	return &redacted
}
