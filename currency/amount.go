package currency

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ErrCurrencyMismatch is returned by Add/Sub when the two amounts carry
// different currencies; with no rate table there is no way to reconcile
// them.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// Amount pairs a scalar magnitude with the currency it is denominated
// in. It is the monetary sibling of measurement.Measurement: the same
// value-plus-tag shape, with the tag fixed to a Currency instead of an
// arbitrary unit.
type Amount struct {
	Value    float64
	Currency Currency
}

// NewAmount builds an Amount.
func NewAmount(value float64, c Currency) Amount {
	return Amount{Value: value, Currency: c}
}

// Add sums two amounts of the same currency.
func (a Amount) Add(b Amount) (Amount, error) {
	if a.Currency.Code != b.Currency.Code {
		return Amount{}, ErrCurrencyMismatch
	}
	return Amount{Value: a.Value + b.Value, Currency: a.Currency}, nil
}

// Sub subtracts b from a; both must share a currency.
func (a Amount) Sub(b Amount) (Amount, error) {
	if a.Currency.Code != b.Currency.Code {
		return Amount{}, ErrCurrencyMismatch
	}
	return Amount{Value: a.Value - b.Value, Currency: a.Currency}, nil
}

// Mul scales the amount by a dimensionless factor.
func (a Amount) Mul(factor float64) Amount {
	return Amount{Value: a.Value * factor, Currency: a.Currency}
}

// Div divides the amount by a dimensionless divisor.
func (a Amount) Div(divisor float64) Amount {
	return Amount{Value: a.Value / divisor, Currency: a.Currency}
}

// Neg returns the negation of the amount.
func (a Amount) Neg() Amount {
	return Amount{Value: -a.Value, Currency: a.Currency}
}

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount {
	return Amount{Value: math.Abs(a.Value), Currency: a.Currency}
}

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool { return a.Value == 0 }

// Equal reports whether two amounts share a currency and agree to the
// currency's minor-unit resolution.
func (a Amount) Equal(b Amount) bool {
	if a.Currency.Code != b.Currency.Code {
		return false
	}
	quantum := math.Pow10(-a.Currency.MinorUnits)
	return math.Abs(a.Value-b.Value) < quantum/2
}

// Format renders the amount for the given locale: the currency symbol,
// a space, and the value with exactly the currency's minor-unit digits
// (so USD 1.5 is "$ 1.50" in English and "$ 1,50" in e.g. French).
func (a Amount) Format(tag language.Tag) string {
	p := message.NewPrinter(tag)
	return fmt.Sprintf("%s %s", a.Currency.Symbol,
		p.Sprintf("%v", number.Decimal(a.Value, number.Scale(a.Currency.MinorUnits))))
}

func (a Amount) String() string {
	return a.Format(language.Tag{})
}
