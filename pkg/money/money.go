// Package money converts between local decimal amounts and the integer
// minor-unit representation used on the payment processor API.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a local record leaves the currency empty.
const DefaultCurrency = "EUR"

// MaxDigits is the total number of digits a stored amount may carry,
// two of them decimal places. Amounts are persisted as NUMERIC(12, 2).
const MaxDigits = 12

// maxValue is the first value that no longer fits in MaxDigits.
var maxValue = decimal.New(1, MaxDigits-2)

// Amount is a local decimal-currency value.
type Amount struct {
	Value    decimal.Decimal `json:"value"`
	Currency string          `json:"currency"`
}

// Minor is an amount in minor units (cents) with its ISO currency code.
type Minor struct {
	Amount   int64  `json:"Amount"`
	Currency string `json:"Currency"`
}

// New parses a decimal string into an Amount.
func New(value, currency string) (Amount, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{}, fmt.Errorf("parse amount %q: %w", value, err)
	}
	return Amount{Value: d, Currency: strings.ToUpper(currency)}, nil
}

// Zero returns a zero amount in the given currency.
func Zero(currency string) Amount {
	return Amount{Value: decimal.Zero, Currency: currency}
}

// InRange reports whether the amount fits in MaxDigits once floored to
// two decimal places. Only in-range amounts may be converted to minor units.
func (a Amount) InRange() bool {
	return a.Value.RoundFloor(2).Abs().LessThan(maxValue)
}

func (a Amount) String() string {
	return a.Value.StringFixed(2) + " " + a.Currency
}

// ToMinorUnits floors the amount to two decimal places and scales it by
// 100. The conversion is lossy: anything past the second decimal is
// dropped toward negative infinity. The currency is passed through as is.
// a must be InRange; larger values do not fit the processor's integer.
func ToMinorUnits(a Amount) Minor {
	return Minor{
		Amount:   a.Value.RoundFloor(2).Shift(2).IntPart(),
		Currency: a.Currency,
	}
}

// FromMinorUnits converts a remote minor-unit amount back to decimal.
func FromMinorUnits(m Minor) Amount {
	return Amount{
		Value:    decimal.New(m.Amount, -2),
		Currency: m.Currency,
	}
}
