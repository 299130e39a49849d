package decimal_math

import (
	"github.com/shopspring/decimal"
)

// Pow10 returns 10^n exactly.
func Pow10(n int) decimal.Decimal {
	return decimal.New(1, int32(n))
}
