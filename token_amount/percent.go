package token_amount

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Percent is the ratio Numerator/Denominator, so 1/2 is 50%.
type Percent struct {
	numerator   decimal.Decimal
	denominator decimal.Decimal
}

var bpsDenominator = decimal.NewFromInt(10_000)

func NewPercent(numerator, denominator int64) (Percent, error) {
	if denominator <= 0 {
		return Percent{}, fmt.Errorf("%w: denominator %d", ErrInvalidPercent, denominator)
	}
	if numerator < 0 {
		return Percent{}, fmt.Errorf("%w: numerator %d", ErrInvalidPercent, numerator)
	}
	return Percent{
		numerator:   decimal.NewFromInt(numerator),
		denominator: decimal.NewFromInt(denominator),
	}, nil
}

// PercentFromBps returns bps/10000.
func PercentFromBps(bps uint64) Percent {
	return Percent{
		numerator:   decimal.NewFromBigInt(new(big.Int).SetUint64(bps), 0),
		denominator: bpsDenominator,
	}
}

func (p Percent) Numerator() decimal.Decimal { return p.numerator }

func (p Percent) Denominator() decimal.Decimal { return p.denominator }

func (p Percent) valid() bool {
	return p.denominator.IsPositive() && !p.numerator.IsNegative()
}

// String renders the percentage with two decimal places, e.g. "33.33%".
func (p Percent) String() string {
	if !p.valid() {
		return "invalid%"
	}
	return p.numerator.Mul(decimal.NewFromInt(100)).DivRound(p.denominator, 2).StringFixed(2) + "%"
}
