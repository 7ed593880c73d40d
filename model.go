package currency

import (
	"time"

	"github.com/shopspring/decimal"
)

type (
	// RawPrice is a single row as the API returned it, before the date is parsed.
	RawPrice struct {
		Date  string
		Price decimal.Decimal
	}

	PricePoint struct {
		Date  time.Time
		Price decimal.Decimal
	}

	// PriceSeries lives for one query of the session only.
	PriceSeries struct {
		Database Database
		Dataset  string
		Label    string
		Points   []PricePoint
	}
)
