package models

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// CurrencyUnit selects one of the two configured display currencies.
type CurrencyUnit string

const (
	UnitPrimary   CurrencyUnit = "primary"
	UnitSecondary CurrencyUnit = "secondary"
)

// Currency describes a display currency.
type Currency struct {
	Code   string
	Symbol string
}

// Format renders an amount for chart labels and chat replies: symbol prefix,
// thousands separators, no decimal places.
func (c Currency) Format(amount decimal.Decimal) string {
	return c.Symbol + humanize.Comma(amount.Round(0).IntPart())
}

// Converter scales amounts into a selected display currency. Conversion is
// pure: primary amounts pass through unchanged, secondary amounts are
// multiplied by the fixed configured rate. Source values are never mutated.
type Converter struct {
	Primary   Currency
	Secondary Currency
	Rate      decimal.Decimal
}

// Resolve maps a requested currency code to a unit. Unknown or empty codes
// resolve to the primary currency.
func (c Converter) Resolve(code string) CurrencyUnit {
	if code == c.Secondary.Code {
		return UnitSecondary
	}
	return UnitPrimary
}

// Currency returns the display currency for a unit.
func (c Converter) Currency(unit CurrencyUnit) Currency {
	if unit == UnitSecondary {
		return c.Secondary
	}
	return c.Primary
}

// Convert returns the amount expressed in the unit's currency.
func (c Converter) Convert(amount decimal.Decimal, unit CurrencyUnit) decimal.Decimal {
	if unit == UnitSecondary {
		return amount.Mul(c.Rate)
	}
	return amount
}
