package reference

import (
	currency "github.com/malusev998/nasdaq-currency"
)

// Spot rates published by the Bank of England, foreign currency into Sterling.
var boeToGBP = []Entry{
	{"GBP/USD", "XUDLUSS"},
	{"GBP/EUR", "XUDLERS"},
	{"GBP/JPY", "XUDLJYS"},
	{"GBP/CAD", "XUDLCDS"},
	{"GBP/CHF", "XUDLSFS"},
	{"GBP/AUD", "XUDLADS"},
	{"GBP/NZD", "XUDLNDS"},
	{"GBP/SEK", "XUDLSKS"},
	{"GBP/NOK", "XUDLNKS"},
	{"GBP/CNY", "XUDLBK89"},
}

// H.10 noon buying rates from the Federal Reserve, quoted against the US dollar.
var fredToUSD = []Entry{
	{"AUD/USD", "DEXUSAL"},
	{"EUR/USD", "DEXUSEU"},
	{"GBP/USD", "DEXUSUK"},
	{"NZD/USD", "DEXUSNZ"},
	{"USD/JPY", "DEXJPUS"},
	{"USD/CAD", "DEXCAUS"},
	{"USD/CHF", "DEXSZUS"},
	{"USD/CNY", "DEXCHUS"},
	{"USD/MXN", "DEXMXUS"},
	{"USD/INR", "DEXINUS"},
	{"USD/KRW", "DEXKOUS"},
	{"USD/ZAR", "DEXSFUS"},
}

// ECB euro foreign exchange reference rates.
var ecbToEUR = []Entry{
	{"EUR/USD", "EURUSD"},
	{"EUR/GBP", "EURGBP"},
	{"EUR/JPY", "EURJPY"},
	{"EUR/CHF", "EURCHF"},
	{"EUR/AUD", "EURAUD"},
	{"EUR/CAD", "EURCAD"},
	{"EUR/SEK", "EURSEK"},
	{"EUR/CNY", "EURCNY"},
}

var defaultCatalog = MustCatalog([]Source{
	{Database: currency.BankOfEngland, Entries: boeToGBP},
	{Database: currency.FederalReserve, Entries: fredToUSD},
	{Database: currency.EuropeanCentralBank, Entries: ecbToEUR},
})

// Default returns the catalog built from the static tables at start-up.
func Default() *Catalog {
	return defaultCatalog
}
