package reference

import (
	"errors"
	"fmt"
	"io"

	currency "github.com/malusev998/nasdaq-currency"
)

var ErrDuplicateDatabase = errors.New("database is listed more than once")

type (
	Source struct {
		Database currency.Database
		Entries  []Entry
	}

	// Catalog maps every known database to its data set table.
	Catalog struct {
		databases []currency.Database
		tables    map[currency.Database]*Table
	}
)

func NewCatalog(sources []Source) (*Catalog, error) {
	c := &Catalog{
		databases: make([]currency.Database, 0, len(sources)),
		tables:    make(map[currency.Database]*Table, len(sources)),
	}

	for _, s := range sources {
		if _, exists := c.tables[s.Database]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDatabase, s.Database)
		}

		t, err := NewTable(s.Entries)
		if err != nil {
			return nil, fmt.Errorf("database %s: %w", s.Database, err)
		}

		c.tables[s.Database] = t
		c.databases = append(c.databases, s.Database)
	}

	return c, nil
}

func MustCatalog(sources []Source) *Catalog {
	c, err := NewCatalog(sources)
	if err != nil {
		panic(err)
	}

	return c
}

// Only returns a catalog holding the given databases in the given order, the
// tables are shared with c.
func (c *Catalog) Only(databases []currency.Database) (*Catalog, error) {
	only := &Catalog{
		databases: make([]currency.Database, 0, len(databases)),
		tables:    make(map[currency.Database]*Table, len(databases)),
	}

	for _, database := range databases {
		t, ok := c.tables[database]
		if !ok {
			return nil, fmt.Errorf("database %s is not known", database)
		}

		if _, exists := only.tables[database]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDatabase, database)
		}

		only.tables[database] = t
		only.databases = append(only.databases, database)
	}

	return only, nil
}

func (c *Catalog) Databases() []currency.Database {
	databases := make([]currency.Database, len(c.databases))
	copy(databases, c.databases)

	return databases
}

func (c *Catalog) Table(database currency.Database) (*Table, bool) {
	t, ok := c.tables[database]
	return t, ok
}

func (c *Catalog) HasDatabase(code string) bool {
	_, ok := c.tables[currency.Database(code)]
	return ok
}

func (c *Catalog) HasDataset(database currency.Database, code string) bool {
	t, ok := c.tables[database]
	if !ok {
		return false
	}

	return t.HasCode(code)
}

// HasAnyDataset reports whether code belongs to the table of any database.
func (c *Catalog) HasAnyDataset(code string) bool {
	for _, t := range c.tables {
		if t.HasCode(code) {
			return true
		}
	}

	return false
}

// Label is the reverse lookup used for chart titles.
func (c *Catalog) Label(database currency.Database, code string) (string, error) {
	t, ok := c.tables[database]
	if !ok {
		return "", &currency.LookupError{Database: database, Dataset: code}
	}

	label, ok := t.Label(code)
	if !ok {
		return "", &currency.LookupError{Database: database, Dataset: code}
	}

	return label, nil
}

func (c *Catalog) Code(database currency.Database, label string) (string, bool) {
	t, ok := c.tables[database]
	if !ok {
		return "", false
	}

	return t.Code(label)
}

func (c *Catalog) PrintDatabases(w io.Writer) error {
	if _, err := fmt.Fprint(w, "\nDatabase Codes:\n\n"); err != nil {
		return err
	}

	for _, database := range c.databases {
		if _, err := fmt.Fprintf(w, "%s\n\n", database); err != nil {
			return err
		}
	}

	return nil
}

func (c *Catalog) PrintDatasets(w io.Writer, database currency.Database) error {
	t, ok := c.tables[database]
	if !ok {
		return fmt.Errorf("database %s is not known", database)
	}

	if _, err := fmt.Fprint(w, "\nData Set Codes:\n\nPair : Code\n"); err != nil {
		return err
	}

	for _, e := range t.entries {
		if _, err := fmt.Fprintf(w, "%s = %s\n\n", e.Label, e.Code); err != nil {
			return err
		}
	}

	return nil
}
