package market

import (
	"fmt"

	"github.com/teranos/quants/errors"
	"github.com/teranos/quants/quantity"
)

// Price is money per quantity: how much one pays for a given amount of any
// quantity type, e.g. $3.50 per gallon or €0.25 per kWh.
type Price[Q quantity.Quantity[Q]] struct {
	money Money
	per   Q
}

// NewPrice creates a price of money per quantity.
func NewPrice[Q quantity.Quantity[Q]](money Money, per Q) Price[Q] {
	return Price[Q]{money: money, per: per}
}

// Money returns the money component.
func (p Price[Q]) Money() Money { return p.money }

// Quantity returns the quantity component.
func (p Price[Q]) Quantity() Q { return p.per }

// PerUnit returns the money amount per one unit of the quantity, in the
// quantity's own unit.
func (p Price[Q]) PerUnit() float64 {
	return p.money.Amount() / p.per.Value()
}

// Cost returns the money the given quantity costs at this price. Both
// quantities are compared in primary units, so cross-unit purchases work.
func (p Price[Q]) Cost(q Q) Money {
	ratio := quantity.ToPrimary(q) / quantity.ToPrimary(p.per)
	return p.money.Mul(ratio)
}

// Affordable returns the quantity the given budget buys at this price. The
// budget must be in the price's currency.
func (p Price[Q]) Affordable(budget Money) (Q, error) {
	if budget.Currency() != p.money.Currency() {
		var zero Q
		return zero, errors.Mark(
			errors.Newf("budget currency %s does not match price currency %s",
				budget.Currency().Code(), p.money.Currency().Code()),
			errors.ErrConversion)
	}
	ratio := budget.Amount() / p.money.Amount()
	return p.per.WithValue(p.per.Value() * ratio), nil
}

// Mul scales the money component by a dimensionless factor.
func (p Price[Q]) Mul(factor float64) Price[Q] {
	return Price[Q]{money: p.money.Mul(factor), per: p.per}
}

// Equal reports whether both prices charge the same money for the same
// quantity.
func (p Price[Q]) Equal(that Price[Q]) bool {
	return p.money.Equal(that.money) && quantity.Equal(p.per, that.per)
}

// String renders the price as "3.5 USD/1 gal".
func (p Price[Q]) String() string {
	return fmt.Sprintf("%s/%s", p.money, quantity.Format(p.per))
}
