// Package reference holds the static database and data set code tables.
package reference

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateCode  = errors.New("duplicate data set code")
	ErrDuplicateLabel = errors.New("duplicate currency pair label")
	ErrEmptyEntry     = errors.New("label and code must not be empty")
)

type (
	// Entry pairs a display label such as "GBP/USD" with a provider data set code.
	Entry struct {
		Label string
		Code  string
	}

	// Table is a read-only two-way mapping between labels and codes.
	Table struct {
		entries []Entry
		byLabel map[string]string
		byCode  map[string]string
	}
)

// NewTable rejects duplicate labels and duplicate codes, so a reverse lookup
// always has exactly one answer.
func NewTable(entries []Entry) (*Table, error) {
	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		byLabel: make(map[string]string, len(entries)),
		byCode:  make(map[string]string, len(entries)),
	}

	for _, e := range entries {
		if e.Label == "" || e.Code == "" {
			return nil, fmt.Errorf("%w: %q = %q", ErrEmptyEntry, e.Label, e.Code)
		}

		if _, exists := t.byLabel[e.Label]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateLabel, e.Label)
		}

		if label, exists := t.byCode[e.Code]; exists {
			return nil, fmt.Errorf("%w: %s (%s, %s)", ErrDuplicateCode, e.Code, label, e.Label)
		}

		t.byLabel[e.Label] = e.Code
		t.byCode[e.Code] = e.Label
		t.entries = append(t.entries, e)
	}

	return t, nil
}

func MustTable(entries []Entry) *Table {
	t, err := NewTable(entries)
	if err != nil {
		panic(err)
	}

	return t
}

func (t *Table) Code(label string) (string, bool) {
	code, ok := t.byLabel[label]
	return code, ok
}

func (t *Table) Label(code string) (string, bool) {
	label, ok := t.byCode[code]
	return label, ok
}

func (t *Table) HasCode(code string) bool {
	_, ok := t.byCode[code]
	return ok
}

// Entries returns a copy in declaration order.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, len(t.entries))
	copy(entries, t.entries)

	return entries
}

func (t *Table) Len() int {
	return len(t.entries)
}
