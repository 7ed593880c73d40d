package currency_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/malusev998/nasdaq-currency"
)

func TestConvertToDatabasesFromStringSlice(t *testing.T) {
	assert := require.New(t)

	values := []struct {
		value    []string
		expected interface{}
		err      error
	}{
		{[]string{"BOE", "FRED", "ECB"}, []currency.Database{currency.BankOfEngland, currency.FederalReserve, currency.EuropeanCentralBank}, nil},
		{[]string{"not-valid-value"}, []currency.Database(nil), errors.New("value not-valid-value is not valid Database")},
	}
	for _, value := range values {
		databases, err := currency.ConvertToDatabasesFromStringSlice(value.value)
		assert.Equal(value.expected, databases)
		assert.Equal(value.err, err)
	}
}

func TestConvertToDatabaseFromString(t *testing.T) {
	assert := require.New(t)
	values := []struct {
		value    string
		expected interface{}
		err      error
	}{
		{"BOE", currency.BankOfEngland, nil},
		{"FRED", currency.FederalReserve, nil},
		{"ECB", currency.EuropeanCentralBank, nil},
		{"fred", currency.EmptyDatabase, errors.New("value fred is not valid Database")},
		{"", currency.EmptyDatabase, errors.New("value  is not valid Database")},
		{"baselist", currency.EmptyDatabase, errors.New("value baselist is not valid Database")},
	}

	for _, value := range values {
		database, err := currency.ConvertToDatabaseFromString(value.value)
		assert.Equal(value.expected, database)
		assert.Equal(value.err, err)
	}
}
