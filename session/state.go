package session

import (
	"fmt"

	currency "github.com/malusev998/nasdaq-currency"
)

type (
	State int

	// DatasetScope decides which tables a typed data set code is checked against.
	DatasetScope string
)

const (
	ChooseDatabase State = iota
	ChooseDataset
	Fetch
	Display
	Continue
	Done
)

const (
	// ScopeDatabase accepts only codes listed for the chosen database.
	ScopeDatabase DatasetScope = "database"
	// ScopeAny accepts a code listed for any database.
	ScopeAny DatasetScope = "any"
)

func (s State) String() string {
	switch s {
	case ChooseDatabase:
		return "ChooseDatabase"
	case ChooseDataset:
		return "ChooseDataset"
	case Fetch:
		return "Fetch"
	case Display:
		return "Display"
	case Continue:
		return "Continue"
	case Done:
		return "Done"
	}

	return fmt.Sprintf("State(%d)", int(s))
}

func ParseDatasetScope(str string) (DatasetScope, error) {
	switch DatasetScope(str) {
	case ScopeDatabase, "":
		return ScopeDatabase, nil
	case ScopeAny:
		return ScopeAny, nil
	}

	return "", fmt.Errorf("value %s is not valid dataset scope, expected %q or %q", str, ScopeDatabase, ScopeAny)
}

// Accepts reports whether code is an acceptable data set for database under scope.
func Accepts(index DatasetIndex, scope DatasetScope, database currency.Database, code string) bool {
	if scope == ScopeAny {
		return index.HasAnyDataset(code)
	}

	return index.HasDataset(database, code)
}
