package decimal_math

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// FloorDiv returns floor(x/y). Both operands are taken as integers.
func FloorDiv(x, y decimal.Decimal) decimal.Decimal {
	q, r := new(big.Int).QuoRem(x.BigInt(), y.BigInt(), new(big.Int))
	if r.Sign() != 0 && (r.Sign() < 0) != (y.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
	}
	return decimal.NewFromBigInt(q, 0)
}
