package fetchers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	NasdaqURL      = "https://data.nasdaq.com/api/v3/datasets"
	DefaultTimeout = 30 * time.Second
)

type (
	errorNasdaqResponse struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"quandl_error"`
	}

	datasetData struct {
		Data [][]json.RawMessage `json:"data"`
	}

	datasetResponse struct {
		DatasetData *datasetData `json:"dataset_data"`
	}
)

var (
	ErrUnAuthorized    = errors.New("unauthorized, API key is missing or invalid")
	ErrNotFound        = errors.New("data set not found")
	ErrClient          = errors.New("client error")
	ErrServer          = errors.New("server error")
	ErrUnknown         = errors.New("unknown error")
	ErrAPILimitReached = errors.New("API limit reached")
	ErrMissingData     = errors.New("response has no dataset_data")
	ErrShortRow        = errors.New("row needs a date and a price")
)

func newRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)

	if err != nil {
		return nil, err
	}

	req.Header.Add("Accept", "application/json")

	return req, nil
}

func handleHTTPStatusCodeError(res *http.Response, body []byte) error {
	if res.StatusCode >= http.StatusOK && res.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	var err error

	switch {
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		err = ErrUnAuthorized
	case res.StatusCode == http.StatusNotFound:
		err = ErrNotFound
	case res.StatusCode == http.StatusTooManyRequests:
		err = ErrAPILimitReached
	case res.StatusCode >= http.StatusBadRequest && res.StatusCode < http.StatusInternalServerError:
		err = ErrClient
	case res.StatusCode >= http.StatusInternalServerError:
		err = ErrServer
	default:
		err = ErrUnknown
	}

	errorRes := errorNasdaqResponse{}
	if json.Unmarshal(body, &errorRes) == nil && errorRes.Error.Message != "" {
		return fmt.Errorf("%w: %s (%s)", err, errorRes.Error.Message, errorRes.Error.Code)
	}

	return fmt.Errorf("%w: %s", err, res.Status)
}
