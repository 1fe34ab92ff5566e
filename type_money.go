package fintrack

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a display currency.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M builds a Money from a decimal amount and a currency code.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// Convert expresses a stored amount in the given display currency by
// applying the configured multiplicative rate. A code with no configured
// rate, such as the storage currency itself, uses a rate of 1.
func Convert(amount decimal.Decimal, code string, s Settings) Money {
	rate, ok := s.Rates[code]
	if !ok {
		return M(amount, code)
	}
	return M(amount.Mul(decimal.NewFromFloat(rate)), code)
}

// currency returns the money's currency, never nil.
func (m Money) currency() *money.Currency {
	return money.New(0, m.cur).Currency()
}

// String formats the value with the currency's symbol and fraction digits.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string          { return m.cur }
func (m Money) Amount() decimal.Decimal   { return m.value }
func (m Money) IsZero() bool              { return m.value.IsZero() }
func (m Money) GreaterThan(n Money) bool  { return m.value.GreaterThan(n.value) }
func (m Money) Add(n Money) Money         { return Money{value: m.value.Add(n.value), cur: m.cur} }
func (m Money) Sub(n Money) Money         { return Money{value: m.value.Sub(n.value), cur: m.cur} }
