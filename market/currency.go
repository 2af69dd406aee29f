// Package market provides monetary quantities: Currency metadata, Money,
// runtime exchange rates, and generic per-quantity prices. Money stands
// apart from the physical quantities because exchange rates between
// currencies are not fixed constants; they must be supplied at runtime.
package market

// Currency enumerates the supported currencies.
type Currency int

const (
	USD Currency = iota
	EUR
	GBP
	JPY
	CHF
	CAD
	AUD
	CNY
	INR
	BTC
)

type currencyInfo struct {
	code     string
	name     string
	symbol   string
	decimals int
}

var currencies = [...]currencyInfo{
	USD: {"USD", "US Dollar", "$", 2},
	EUR: {"EUR", "Euro", "€", 2},
	GBP: {"GBP", "British Pound Sterling", "£", 2},
	JPY: {"JPY", "Japanese Yen", "¥", 0},
	CHF: {"CHF", "Swiss Franc", "CHF", 2},
	CAD: {"CAD", "Canadian Dollar", "C$", 2},
	AUD: {"AUD", "Australian Dollar", "A$", 2},
	CNY: {"CNY", "Chinese Yuan Renminbi", "¥", 2},
	INR: {"INR", "Indian Rupee", "₹", 2},
	BTC: {"BTC", "Bitcoin", "₿", 8},
}

var currencyByCode map[string]Currency

func init() {
	currencyByCode = make(map[string]Currency, len(currencies))
	for i := range currencies {
		currencyByCode[currencies[i].code] = Currency(i)
	}
}

// Code returns the ISO-style currency code, e.g. "USD".
func (c Currency) Code() string { return currencies[c].code }

// Name returns the full currency name, e.g. "US Dollar".
func (c Currency) Name() string { return currencies[c].name }

// Symbol returns the display symbol, e.g. "$".
func (c Currency) Symbol() string { return currencies[c].symbol }

// Decimals returns the number of decimal places used for formatting;
// 2 for most currencies, 0 for JPY, 8 for BTC.
func (c Currency) Decimals() int { return currencies[c].decimals }

func (c Currency) String() string { return c.Code() }

// Currencies returns the closed list of supported currencies.
func Currencies() []Currency {
	all := make([]Currency, len(currencies))
	for i := range all {
		all[i] = Currency(i)
	}
	return all
}

// CurrencyFromCode looks a currency up by its code. Matching is verbatim
// and case-sensitive.
func CurrencyFromCode(code string) (Currency, bool) {
	c, ok := currencyByCode[code]
	return c, ok
}
