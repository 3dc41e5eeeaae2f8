// README: Common money value object used across modules.
package types

import "fmt"

// CurrencyUSD is the only currency the cost table is quoted in.
const CurrencyUSD = "USD"

type Money struct {
	Amount   int64
	Currency string
}

func USD(amount int64) Money {
	return Money{Amount: amount, Currency: CurrencyUSD}
}

// String renders whole-unit amounts, e.g. "$800" or "800 EUR".
func (m Money) String() string {
	if m.Currency == "" || m.Currency == CurrencyUSD {
		return fmt.Sprintf("$%d", m.Amount)
	}
	return fmt.Sprintf("%d %s", m.Amount, m.Currency)
}
