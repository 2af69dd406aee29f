package market

import (
	"fmt"
	"math"

	"github.com/teranos/quants/errors"
)

// ExchangeRate converts money between a base and a counter currency at a
// fixed rate: 1 base = rate counter. Conversion works in both directions.
type ExchangeRate struct {
	base    Currency
	counter Currency
	rate    float64
}

// NewExchangeRate creates an exchange rate. The base and counter must
// differ and the rate must be finite and strictly positive.
func NewExchangeRate(base, counter Currency, rate float64) (ExchangeRate, error) {
	if base == counter {
		return ExchangeRate{}, errors.Mark(
			errors.New("exchange rate base and counter currency must differ"),
			errors.ErrUnsupported)
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return ExchangeRate{}, errors.Mark(
			errors.Newf("exchange rate must be finite, got %v", rate),
			errors.ErrConversion)
	}
	if rate <= 0 {
		return ExchangeRate{}, errors.Mark(
			errors.Newf("exchange rate must be greater than zero, got %v", rate),
			errors.ErrConversion)
	}
	return ExchangeRate{base: base, counter: counter, rate: rate}, nil
}

// MustExchangeRate is the panic-on-invalid-input wrapper around
// NewExchangeRate, intended for compile-time-constant rates.
func MustExchangeRate(base, counter Currency, rate float64) ExchangeRate {
	r, err := NewExchangeRate(base, counter, rate)
	if err != nil {
		panic(err)
	}
	return r
}

// Base returns the base currency.
func (r ExchangeRate) Base() Currency { return r.base }

// Counter returns the counter currency.
func (r ExchangeRate) Counter() Currency { return r.counter }

// Rate returns the amount of counter currency one unit of base buys.
func (r ExchangeRate) Rate() float64 { return r.rate }

// Convert exchanges money denominated in either the base or the counter
// currency into the other. Money in any other currency fails with an
// ErrConversion-marked error.
func (r ExchangeRate) Convert(m Money) (Money, error) {
	switch m.Currency() {
	case r.base:
		return NewMoney(m.Amount()*r.rate, r.counter), nil
	case r.counter:
		return NewMoney(m.Amount()/r.rate, r.base), nil
	default:
		return Money{}, errors.Mark(
			errors.Newf("cannot convert %s with the %s/%s rate",
				m.Currency().Code(), r.base.Code(), r.counter.Code()),
			errors.ErrConversion)
	}
}

// Inverse returns the counter/base rate.
func (r ExchangeRate) Inverse() ExchangeRate {
	return ExchangeRate{base: r.counter, counter: r.base, rate: 1 / r.rate}
}

// String renders the rate as "USD/EUR 0.85".
func (r ExchangeRate) String() string {
	return fmt.Sprintf("%s/%s %v", r.base.Code(), r.counter.Code(), r.rate)
}
