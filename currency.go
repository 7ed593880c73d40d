package currency

import "context"

type (
	Fetcher interface {
		Fetch(ctx context.Context, database Database, dataset string) ([]RawPrice, error)
	}

	// ChartRenderer draws a series and returns where the chart can be found.
	ChartRenderer interface {
		Render(series PriceSeries) (string, error)
	}
)
