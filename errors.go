package currency

import (
	"fmt"
)

type (
	// FetchError means no usable response was received for the query.
	FetchError struct {
		Database Database
		Dataset  string
		Err      error
	}

	// ParseError is returned for a malformed body or a malformed date value.
	ParseError struct {
		Value string
		Err   error
	}

	LookupError struct {
		Database Database
		Dataset  string
	}
)

func (e *FetchError) Error() string {
	return fmt.Sprintf("unable to fetch %s/%s: %v", e.Database, e.Dataset, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("unable to parse response: %v", e.Err)
	}

	return fmt.Sprintf("unable to parse %q: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("data set %s is not listed for database %s", e.Dataset, e.Database)
}
