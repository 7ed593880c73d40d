// Package chart renders price series as HTML line charts and opens them in the browser.
package chart

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/google/uuid"
	"github.com/pkg/browser"

	currency "github.com/malusev998/nasdaq-currency"
)

const dateLayout = "2006-01-02"

var ErrNoPoints = errors.New("series has no points to draw")

type EChartsRenderer struct {
	// Dir receives the chart files, the OS temp dir when empty.
	Dir  string
	Open bool
	// Opener defaults to browser.OpenFile.
	Opener func(path string) error
}

// NewLineChart builds a single-series chart with date on x and price on y.
func NewLineChart(series currency.PriceSeries) *charts.Line {
	line := charts.NewLine()

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: series.Label,
			Width:     "1200px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    series.Label,
			Subtitle: fmt.Sprintf("%s/%s", series.Database, series.Dataset),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Date"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Price", Scale: true}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
	)

	dates := make([]string, 0, len(series.Points))
	prices := make([]opts.LineData, 0, len(series.Points))

	for _, p := range series.Points {
		dates = append(dates, p.Date.Format(dateLayout))
		prices = append(prices, opts.LineData{Value: p.Price.InexactFloat64()})
	}

	line.SetXAxis(dates).AddSeries("Price", prices)

	return line
}

func (r EChartsRenderer) Render(series currency.PriceSeries) (string, error) {
	if len(series.Points) == 0 {
		return "", ErrNoPoints
	}

	dir := r.Dir

	if dir == "" {
		dir = os.TempDir()
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("chart directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s_%s_%s.html", series.Database, series.Dataset, uuid.NewString()))

	file, err := os.Create(path)

	if err != nil {
		return "", err
	}

	if err := NewLineChart(series).Render(file); err != nil {
		_ = file.Close()
		return "", err
	}

	if err := file.Close(); err != nil {
		return "", err
	}

	if !r.Open {
		return path, nil
	}

	open := r.Opener

	if open == nil {
		open = browser.OpenFile
	}

	if err := open(path); err != nil {
		return path, fmt.Errorf("opening chart %s: %w", path, err)
	}

	return path, nil
}
