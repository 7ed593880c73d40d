package reference_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/malusev998/nasdaq-currency/reference"
)

func TestNewTable(t *testing.T) {
	t.Parallel()

	t.Run("BuildsBothDirections", func(t *testing.T) {
		asserts := require.New(t)
		table, err := reference.NewTable([]reference.Entry{
			{"GBP/USD", "XUDLUSS"},
			{"GBP/EUR", "XUDLERS"},
		})

		asserts.Nil(err)
		asserts.Equal(2, table.Len())

		code, ok := table.Code("GBP/EUR")
		asserts.True(ok)
		asserts.Equal("XUDLERS", code)

		label, ok := table.Label("XUDLUSS")
		asserts.True(ok)
		asserts.Equal("GBP/USD", label)

		_, ok = table.Label("DEXUSAL")
		asserts.False(ok)
	})

	t.Run("DuplicateCode", func(t *testing.T) {
		asserts := require.New(t)
		table, err := reference.NewTable([]reference.Entry{
			{"GBP/USD", "XUDLUSS"},
			{"USD/GBP", "XUDLUSS"},
		})

		asserts.Nil(table)
		asserts.True(errors.Is(err, reference.ErrDuplicateCode))
	})

	t.Run("DuplicateLabel", func(t *testing.T) {
		asserts := require.New(t)
		_, err := reference.NewTable([]reference.Entry{
			{"GBP/USD", "XUDLUSS"},
			{"GBP/USD", "DEXUSUK"},
		})

		asserts.True(errors.Is(err, reference.ErrDuplicateLabel))
	})

	t.Run("EmptyEntry", func(t *testing.T) {
		asserts := require.New(t)
		_, err := reference.NewTable([]reference.Entry{{"GBP/USD", ""}})

		asserts.True(errors.Is(err, reference.ErrEmptyEntry))
	})

	t.Run("EntriesIsACopy", func(t *testing.T) {
		asserts := require.New(t)
		table := reference.MustTable([]reference.Entry{{"GBP/USD", "XUDLUSS"}})

		entries := table.Entries()
		entries[0].Code = "CHANGED"

		label, ok := table.Label("XUDLUSS")
		asserts.True(ok)
		asserts.Equal("GBP/USD", label)
		asserts.Equal("XUDLUSS", table.Entries()[0].Code)
	})
}

func TestMustTable_Panics(t *testing.T) {
	asserts := require.New(t)

	asserts.Panics(func() {
		reference.MustTable([]reference.Entry{{"A", "X"}, {"B", "X"}})
	})
}
