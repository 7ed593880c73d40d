// Package session drives the interactive prompt loop.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	currency "github.com/malusev998/nasdaq-currency"
	"github.com/malusev998/nasdaq-currency/services"
)

const (
	BaseListCommand = "baselist"
	SetListCommand  = "setlist"
	ContinueAnswer  = "Y"

	databasePrompt = "Please input a NASDAQ Database Code (Ex. FRED). Type 'baselist' to print Database List."
	datasetPrompt  = "\nPlease input a NASDAQ Data Set Code (Ex. DEXUSAL). Type 'setlist' to print Data Set List."
	continuePrompt = "Would you like to render another price chart? (Y/N)"
)

type (
	DatasetIndex interface {
		HasDataset(database currency.Database, code string) bool
		HasAnyDataset(code string) bool
	}

	Catalog interface {
		DatasetIndex
		HasDatabase(code string) bool
		PrintDatabases(w io.Writer) error
		PrintDatasets(w io.Writer, database currency.Database) error
	}

	Querier interface {
		Fetch(ctx context.Context, query services.Query) (currency.PriceSeries, error)
		Display(query services.Query, series currency.PriceSeries) error
	}

	Config struct {
		Catalog Catalog
		Queries Querier
		Scope   DatasetScope
		In      io.Reader
		Out     io.Writer
		Logger  *slog.Logger
	}

	Session struct {
		catalog Catalog
		queries Querier
		scope   DatasetScope
		in      io.Reader
		out     io.Writer
		logger  *slog.Logger

		lines     chan string
		stop      chan struct{}
		startRead sync.Once
		stopRead  sync.Once

		state    State
		database currency.Database
		dataset  string
		query    services.Query
		series   currency.PriceSeries
	}
)

func New(config Config) *Session {
	logger := config.Logger

	if logger == nil {
		logger = slog.Default()
	}

	scope := config.Scope

	if scope == "" {
		scope = ScopeDatabase
	}

	return &Session{
		catalog: config.Catalog,
		queries: config.Queries,
		scope:   scope,
		in:      config.In,
		out:     config.Out,
		logger:  logger,
		lines:   make(chan string),
		stop:    make(chan struct{}),
		state:   ChooseDatabase,
	}
}

func (s *Session) State() State {
	return s.state
}

// Run steps the session until it is Done or ctx is cancelled. A cancelled
// session keeps the state it was interrupted in.
func (s *Session) Run(ctx context.Context) error {
	defer s.stopReading()

	for s.state != Done {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.Step(ctx)
	}

	return nil
}

// Step performs the work of the current state and moves to the next one.
func (s *Session) Step(ctx context.Context) State {
	from := s.state

	switch s.state {
	case ChooseDatabase:
		s.state = s.chooseDatabase(ctx)
	case ChooseDataset:
		s.state = s.chooseDataset(ctx)
	case Fetch:
		s.state = s.fetch(ctx)
	case Display:
		s.state = s.display()
	case Continue:
		s.state = s.askContinue(ctx)
	}

	s.logger.Debug("session transition", "from", from, "to", s.state)

	return s.state
}

// scan feeds input lines to s.lines until EOF or stopReading, so a prompt can
// wait on ctx while the read blocks.
func (s *Session) scan() {
	defer close(s.lines)

	scanner := bufio.NewScanner(s.in)

	for scanner.Scan() {
		select {
		case s.lines <- scanner.Text():
		case <-s.stop:
			return
		}
	}

	if err := scanner.Err(); err != nil {
		s.logger.Error("reading input failed", "error", err)
	}
}

func (s *Session) stopReading() {
	s.stopRead.Do(func() { close(s.stop) })
}

// readLine returns false on EOF or when ctx is done.
func (s *Session) readLine(ctx context.Context) (string, bool) {
	s.startRead.Do(func() { go s.scan() })

	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-s.lines:
		return line, ok
	}
}

// interrupted is the state a prompt leaves with when no line came back:
// unchanged when ctx was cancelled, Done on EOF.
func (s *Session) interrupted(ctx context.Context) State {
	if ctx.Err() != nil {
		return s.state
	}

	return Done
}

func (s *Session) chooseDatabase(ctx context.Context) State {
	for {
		fmt.Fprintln(s.out, databasePrompt)

		code, ok := s.readLine(ctx)

		if !ok {
			return s.interrupted(ctx)
		}

		if code == BaseListCommand {
			if err := s.catalog.PrintDatabases(s.out); err != nil {
				s.report(err)
			}

			continue
		}

		if s.catalog.HasDatabase(code) {
			s.database = currency.Database(code)
			return ChooseDataset
		}
	}
}

func (s *Session) chooseDataset(ctx context.Context) State {
	for {
		fmt.Fprintln(s.out, datasetPrompt)

		code, ok := s.readLine(ctx)

		if !ok {
			return s.interrupted(ctx)
		}

		if code == SetListCommand {
			if err := s.catalog.PrintDatasets(s.out, s.database); err != nil {
				s.report(err)
			}

			continue
		}

		if Accepts(s.catalog, s.scope, s.database, code) {
			s.dataset = code
			return Fetch
		}
	}
}

func (s *Session) fetch(ctx context.Context) State {
	s.query = services.NewQuery(s.database, s.dataset)

	series, err := s.queries.Fetch(ctx, s.query)

	if err != nil {
		if ctx.Err() != nil {
			return s.state
		}

		s.report(err)
		return Continue
	}

	s.series = series

	return Display
}

func (s *Session) display() State {
	if err := s.queries.Display(s.query, s.series); err != nil {
		s.report(err)
	}

	return Continue
}

func (s *Session) askContinue(ctx context.Context) State {
	fmt.Fprintln(s.out, continuePrompt)

	answer, ok := s.readLine(ctx)

	if !ok {
		return s.interrupted(ctx)
	}

	if answer != ContinueAnswer {
		return Done
	}

	s.database = currency.EmptyDatabase
	s.dataset = ""
	s.series = currency.PriceSeries{}

	return ChooseDatabase
}

func (s *Session) report(err error) {
	fmt.Fprintf(s.out, "Error: %v\n", err)
}
