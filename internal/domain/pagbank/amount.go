package pagbank

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

var oneHundred = decimal.NewFromInt(100)

// Centavos converts a major-currency decimal value into integer centavos,
// rounding half away from zero (half-up for the non-negative inputs allowed
// here): 19.995 becomes 2000, never 1999. Negative amounts are rejected
// before any payload is built.
func Centavos(valor decimal.Decimal) (int64, error) {
	if valor.IsNegative() {
		return 0, ErrInvalidAmount
	}
	return valor.Mul(oneHundred).Round(0).IntPart(), nil
}
