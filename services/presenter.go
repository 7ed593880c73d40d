package services

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	currency "github.com/malusev998/nasdaq-currency"
)

const DateLayout = "2006-01-02"

type (
	LabelResolver interface {
		Label(database currency.Database, code string) (string, error)
	}

	Presenter struct {
		Catalog LabelResolver
		Charts  currency.ChartRenderer
		Out     io.Writer
	}
)

// Build parses the raw rows into a date-ordered series titled by its pair label.
func (p Presenter) Build(database currency.Database, dataset string, prices []currency.RawPrice) (currency.PriceSeries, error) {
	points := make([]currency.PricePoint, 0, len(prices))

	for _, raw := range prices {
		date, err := time.Parse(DateLayout, raw.Date)

		if err != nil {
			return currency.PriceSeries{}, &currency.ParseError{Value: raw.Date, Err: err}
		}

		points = append(points, currency.PricePoint{Date: date, Price: raw.Price})
	}

	// The API sends newest first.
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	label, err := p.Catalog.Label(database, dataset)

	if err != nil {
		return currency.PriceSeries{}, err
	}

	return currency.PriceSeries{
		Database: database,
		Dataset:  dataset,
		Label:    label,
		Points:   points,
	}, nil
}

// Present draws the chart and prints the table. The table is printed even when
// the chart could not be drawn.
func (p Presenter) Present(series currency.PriceSeries) error {
	location, chartErr := p.Charts.Render(series)

	if err := p.PrintTable(series); err != nil {
		return err
	}

	if chartErr != nil {
		return fmt.Errorf("rendering chart for %s: %w", series.Label, chartErr)
	}

	_, err := fmt.Fprintf(p.Out, "Chart: %s\n", location)

	return err
}

func (p Presenter) PrintTable(series currency.PriceSeries) error {
	if _, err := fmt.Fprintf(p.Out, "\n%s (%s/%s)\n", series.Label, series.Database, series.Dataset); err != nil {
		return err
	}

	table := tablewriter.NewWriter(p.Out)
	table.SetHeader([]string{"", "Date", "Price"})
	table.SetAutoFormatHeaders(false)
	table.SetFooter([]string{"", "Rows", strconv.Itoa(len(series.Points))})

	for i, point := range series.Points {
		table.Append([]string{strconv.Itoa(i), point.Date.Format(DateLayout), point.Price.String()})
	}

	table.Render()

	return nil
}
