package domain

import "github.com/shopspring/decimal"

// MoneyPlaces is the scale every stored monetary value is rounded to.
const MoneyPlaces = 2

// RoundMoney rounds v to the stored scale.
func RoundMoney(v decimal.Decimal) decimal.Decimal {
	return v.Round(MoneyPlaces)
}

// HasMoneyScale reports whether v carries no digits beyond MoneyPlaces.
func HasMoneyScale(v decimal.Decimal) bool {
	return v.Equal(RoundMoney(v))
}
