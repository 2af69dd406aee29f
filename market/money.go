package market

import (
	"fmt"
	"math"

	"github.com/teranos/quants/errors"
	"github.com/teranos/quants/quantity"
)

// Money is an amount in a specific currency. Arithmetic between two Money
// values requires matching currencies and fails with an ErrUnsupported-marked
// error otherwise; use an ExchangeRate to cross currencies first.
type Money struct {
	amount   float64
	currency Currency
}

// NewMoney creates a money amount.
func NewMoney(amount float64, currency Currency) Money {
	return Money{amount: amount, currency: currency}
}

// Amount returns the numeric amount.
func (m Money) Amount() float64 { return m.amount }

// Currency returns the money's currency.
func (m Money) Currency() Currency { return m.currency }

func mismatch(a, b Currency) error {
	return errors.Mark(
		errors.Newf("cannot operate on different currencies: %s and %s", a.Code(), b.Code()),
		errors.ErrUnsupported)
}

// Add returns m + that. Fails when the currencies differ.
func (m Money) Add(that Money) (Money, error) {
	if m.currency != that.currency {
		return Money{}, mismatch(m.currency, that.currency)
	}
	return Money{amount: m.amount + that.amount, currency: m.currency}, nil
}

// Sub returns m - that. Fails when the currencies differ.
func (m Money) Sub(that Money) (Money, error) {
	if m.currency != that.currency {
		return Money{}, mismatch(m.currency, that.currency)
	}
	return Money{amount: m.amount - that.amount, currency: m.currency}, nil
}

// Mul scales the amount by a dimensionless factor.
func (m Money) Mul(factor float64) Money {
	return Money{amount: m.amount * factor, currency: m.currency}
}

// Div divides the amount by a dimensionless factor.
func (m Money) Div(divisor float64) Money {
	return Money{amount: m.amount / divisor, currency: m.currency}
}

// DivMoney returns the dimensionless ratio m / that. Fails when the
// currencies differ.
func (m Money) DivMoney(that Money) (float64, error) {
	if m.currency != that.currency {
		return 0, mismatch(m.currency, that.currency)
	}
	return m.amount / that.amount, nil
}

// Neg returns the amount negated.
func (m Money) Neg() Money {
	return Money{amount: -m.amount, currency: m.currency}
}

// Equal reports whether both values are the same amount of the same
// currency, within machine epsilon. Amounts in different currencies are
// never equal.
func (m Money) Equal(that Money) bool {
	return m.currency == that.currency &&
		math.Abs(m.amount-that.amount) < quantity.Epsilon
}

// Compare orders two amounts of the same currency. Fails when the
// currencies differ, since no fixed ordering exists across currencies.
func (m Money) Compare(that Money) (int, error) {
	if m.currency != that.currency {
		return 0, mismatch(m.currency, that.currency)
	}
	switch {
	case m.amount < that.amount:
		return -1, nil
	case m.amount > that.amount:
		return 1, nil
	default:
		return 0, nil
	}
}

// Formatted renders the amount with the currency symbol and the currency's
// decimal convention, e.g. "$123.46", "¥1235", "₿0.00100000".
func (m Money) Formatted() string {
	return fmt.Sprintf("%s%.*f", m.currency.Symbol(), m.currency.Decimals(), m.amount)
}

// String renders the amount with the currency code, e.g. "100.5 USD".
func (m Money) String() string {
	return fmt.Sprintf("%v %s", m.amount, m.currency.Code())
}
