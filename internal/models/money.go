package models

import "github.com/shopspring/decimal"

// MoneyPlaces is the number of decimal places stored for every price and total.
const MoneyPlaces = 2

func init() {
	// Clients read prices as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// RoundMoney rounds d half away from zero to MoneyPlaces.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}
