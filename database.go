package currency

import (
	"fmt"
)

type Database string

const (
	BankOfEngland       Database = "BOE"
	FederalReserve      Database = "FRED"
	EuropeanCentralBank Database = "ECB"
	EmptyDatabase       Database = ""
)

// ConvertToDatabasesFromStringSlice converts the databases config list.
func ConvertToDatabasesFromStringSlice(strings []string) ([]Database, error) {
	databases := make([]Database, 0, len(strings))

	for _, str := range strings {
		database, err := ConvertToDatabaseFromString(str)
		if err != nil {
			return nil, err
		}

		databases = append(databases, database)
	}

	return databases, nil
}

// ConvertToDatabaseFromString matches case-sensitively, "fred" is not a database code.
func ConvertToDatabaseFromString(str string) (Database, error) {
	switch Database(str) {
	case BankOfEngland:
		return BankOfEngland, nil
	case FederalReserve:
		return FederalReserve, nil
	case EuropeanCentralBank:
		return EuropeanCentralBank, nil
	}

	return EmptyDatabase, fmt.Errorf("value %s is not valid Database", str)
}

func (d Database) String() string {
	return string(d)
}
