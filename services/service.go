package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	currency "github.com/malusev998/nasdaq-currency"
)

var ErrEmptySeries = errors.New("data set returned no prices")

type (
	// Query identifies one fetch and display cycle; ID tags its log lines.
	Query struct {
		ID       string
		Database currency.Database
		Dataset  string
	}

	QueryService struct {
		Fetcher   currency.Fetcher
		Presenter Presenter
		Logger    *slog.Logger
	}
)

func NewQuery(database currency.Database, dataset string) Query {
	return Query{
		ID:       uuid.NewString(),
		Database: database,
		Dataset:  dataset,
	}
}

func (s QueryService) logger(op string, query Query) *slog.Logger {
	logger := s.Logger

	if logger == nil {
		logger = slog.Default()
	}

	return logger.With("op", op, "query_id", query.ID, "database", query.Database, "dataset", query.Dataset)
}

func (s QueryService) Fetch(ctx context.Context, query Query) (currency.PriceSeries, error) {
	logger := s.logger("services.QueryService.Fetch", query)
	logger.Debug("fetching data set")

	prices, err := s.Fetcher.Fetch(ctx, query.Database, query.Dataset)

	if err != nil {
		logger.Error("fetch failed", "error", err)
		return currency.PriceSeries{}, err
	}

	series, err := s.Presenter.Build(query.Database, query.Dataset, prices)

	if err != nil {
		logger.Error("building series failed", "error", err)
		return currency.PriceSeries{}, err
	}

	if len(series.Points) == 0 {
		logger.Warn("empty data set")
		return currency.PriceSeries{}, ErrEmptySeries
	}

	logger.Info("data set fetched", "points", len(series.Points), "label", series.Label)

	return series, nil
}

func (s QueryService) Display(query Query, series currency.PriceSeries) error {
	if err := s.Presenter.Present(series); err != nil {
		s.logger("services.QueryService.Display", query).Error("presenting series failed", "error", err)
		return err
	}

	return nil
}

// Run fetches and displays a single data set without prompting.
func (s QueryService) Run(ctx context.Context, database currency.Database, dataset string) error {
	query := NewQuery(database, dataset)

	series, err := s.Fetch(ctx, query)

	if err != nil {
		return err
	}

	return s.Display(query, series)
}
