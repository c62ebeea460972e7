// Package currency holds the supported currency and region tables.
package currency

// Currency describes a supported display currency.
type Currency struct {
	Code   string
	Symbol string
	Name   string
}

// Region maps a country to its default currency.
type Region struct {
	Code     string
	Name     string
	Currency string
}

var Currencies = []Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "CAD", Symbol: "CA$", Name: "Canadian Dollar"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{Code: "CHF", Symbol: "CHF", Name: "Swiss Franc"},
	{Code: "CNY", Symbol: "¥", Name: "Chinese Yuan"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{Code: "TRY", Symbol: "₺", Name: "Turkish Lira"},
}

var Regions = []Region{
	{Code: "US", Name: "United States", Currency: "USD"},
	{Code: "GB", Name: "United Kingdom", Currency: "GBP"},
	{Code: "DE", Name: "Germany", Currency: "EUR"},
	{Code: "FR", Name: "France", Currency: "EUR"},
	{Code: "IT", Name: "Italy", Currency: "EUR"},
	{Code: "ES", Name: "Spain", Currency: "EUR"},
	{Code: "CA", Name: "Canada", Currency: "CAD"},
	{Code: "AU", Name: "Australia", Currency: "AUD"},
	{Code: "JP", Name: "Japan", Currency: "JPY"},
	{Code: "CN", Name: "China", Currency: "CNY"},
	{Code: "IN", Name: "India", Currency: "INR"},
	{Code: "TR", Name: "Turkey", Currency: "TRY"},
	{Code: "CH", Name: "Switzerland", Currency: "CHF"},
}

// ByCode returns the currency for a code, or false if unknown.
func ByCode(code string) (Currency, bool) {
	for _, c := range Currencies {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

// RegionByCode returns the region for a code, or false if unknown.
func RegionByCode(code string) (Region, bool) {
	for _, r := range Regions {
		if r.Code == code {
			return r, true
		}
	}
	return Region{}, false
}

// Symbol returns the display symbol for a currency code, falling back to
// "$" for unknown codes.
func Symbol(code string) string {
	if c, ok := ByCode(code); ok {
		return c.Symbol
	}
	return "$"
}

// DefaultForRegion returns the default currency code for a region,
// falling back to USD.
func DefaultForRegion(regionCode string) string {
	if r, ok := RegionByCode(regionCode); ok {
		return r.Currency
	}
	return "USD"
}
