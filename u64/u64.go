// Package u64 checks arbitrary precision values against the range of an unsigned 64 bit integer.
package u64

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

var (
	ErrOutOfRange = errors.New("value out of u64 range")
	ErrNotInteger = errors.New("value is not an integer")

	maxUint64 = new(big.Int).SetUint64(math.MaxUint64)
)

// Max returns 2^64-1 as a fresh big.Int.
func Max() *big.Int {
	return new(big.Int).Set(maxUint64)
}

// Validate returns i as a uint64, or ErrOutOfRange if i is negative or exceeds 2^64-1.
func Validate(i *big.Int) (uint64, error) {
	if i == nil {
		return 0, fmt.Errorf("%w: nil", ErrOutOfRange)
	}
	if i.Sign() < 0 {
		return 0, fmt.Errorf("%w: %s is negative", ErrOutOfRange, i)
	}
	if i.Cmp(maxUint64) > 0 {
		return 0, fmt.Errorf("%w: %s overflows u64", ErrOutOfRange, i)
	}
	return i.Uint64(), nil
}

// ValidateDecimal is Validate for integral decimals.
func ValidateDecimal(d decimal.Decimal) (uint64, error) {
	if !d.IsInteger() {
		return 0, fmt.Errorf("%w: %s", ErrNotInteger, d)
	}
	return Validate(d.BigInt())
}

// Uint64 implements fmt.Scanner with range checking.
type Uint64 uint64

func (u *Uint64) Scan(s fmt.ScanState, ch rune) error {
	i := new(big.Int)
	if err := i.Scan(s, ch); err != nil {
		return err
	}
	v, err := Validate(i)
	if err != nil {
		return err
	}
	*u = Uint64(v)
	return nil
}

// FromString parses a base 10 integer string into a uint64.
func FromString(num string) (uint64, error) {
	i, ok := new(big.Int).SetString(num, 10)
	if !ok {
		return 0, fmt.Errorf("parse %q: invalid integer", num)
	}
	return Validate(i)
}
